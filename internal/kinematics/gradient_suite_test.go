package kinematics_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/jumpviz/internal/kinematics"
)

var _ = Describe("Gradient", func() {
	Context("with constant-rate motion", func() {
		var (
			t []float64
			x []float64
		)

		BeforeEach(func() {
			t = []float64{0.0, 0.1, 0.25, 0.3, 0.7, 1.0}
			x = make([]float64, len(t))
			for i := range t {
				x[i] = 1.5 - 3.0*t[i]
			}
		})

		It("recovers the rate at interior samples", func() {
			v, err := kinematics.Gradient(x, t)
			Expect(err).NotTo(HaveOccurred())
			for i := 1; i < len(v)-1; i++ {
				Expect(v[i]).To(BeNumerically("~", -3.0, 1e-12))
			}
		})

		It("recovers the rate at both edges", func() {
			v, err := kinematics.Gradient(x, t)
			Expect(err).NotTo(HaveOccurred())
			Expect(v[0]).To(BeNumerically("~", -3.0, 1e-12))
			Expect(v[len(v)-1]).To(BeNumerically("~", -3.0, 1e-12))
		})
	})

	It("matches the half-second example", func() {
		v, err := kinematics.Gradient([]float64{0, 1, 2}, []float64{0, 0.5, 1})
		Expect(err).NotTo(HaveOccurred())
		Expect(v).To(Equal([]float64{2, 2, 2}))
	})

	DescribeTable("rejects degenerate time axes",
		func(t []float64, sentinel error) {
			_, err := kinematics.Gradient(make([]float64, len(t)), t)
			Expect(errors.Is(err, sentinel)).To(BeTrue())

			var ce *kinematics.ComputeError
			Expect(errors.As(err, &ce)).To(BeTrue())
		},
		Entry("empty", []float64{}, kinematics.ErrTooFewSamples),
		Entry("single sample", []float64{0.0}, kinematics.ErrTooFewSamples),
		Entry("repeated sample", []float64{0.0, 0.1, 0.1}, kinematics.ErrNotMonotonic),
		Entry("decreasing", []float64{0.0, 0.2, 0.1}, kinematics.ErrNotMonotonic),
	)
})

var _ = Describe("GradientRows", func() {
	It("differentiates each row independently", func() {
		t := []float64{0, 1, 2, 3}
		m := mat.NewDense(2, 4, []float64{
			0, 2, 4, 6,
			1, 1, 1, 1,
		})
		v, err := kinematics.GradientRows(m, t)
		Expect(err).NotTo(HaveOccurred())

		r, c := v.Dims()
		Expect(r).To(Equal(2))
		Expect(c).To(Equal(4))
		Expect(v.RawRowView(0)).To(Equal([]float64{2, 2, 2, 2}))
		Expect(v.RawRowView(1)).To(Equal([]float64{0, 0, 0, 0}))
	})

	It("rejects a time axis of the wrong length", func() {
		_, err := kinematics.GradientRows(mat.NewDense(1, 3, nil), []float64{0, 1})
		Expect(err).To(MatchError(kinematics.ErrLengthMismatch))
	})
})
