package storage

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/jumpviz/internal/motion"
)

// timeTolerance bounds the disagreement between a marker's time column and
// the shared axis before a warning is logged.
const timeTolerance = 1e-9

// Store reads and writes recordings laid out as
// <baseDir>/<condition>/<jumpType>/marker_<n>.txt.
type Store struct {
	baseDir string
	log     zerolog.Logger
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir, log: zerolog.Nop()}
}

// WithLogger returns a copy of s that logs through l.
func (s *Store) WithLogger(l zerolog.Logger) *Store {
	c := *s
	c.log = l.With().Str("component", "storage").Logger()
	return &c
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// Dir returns the directory holding the marker files of key.
func (s *Store) Dir(key motion.Key) string {
	return filepath.Join(s.baseDir, string(key.Condition), string(key.JumpType))
}

// Path returns the marker file of m within key.
func (s *Store) Path(key motion.Key, m motion.Marker) string {
	return filepath.Join(s.Dir(key), m.FileName())
}

// Load reads the six marker files of (c, j) and derives velocities. The time
// axis is taken from marker 1.
func (s *Store) Load(c motion.Condition, j motion.JumpType) (*motion.Series, error) {
	key := motion.Key{Condition: c, JumpType: j}

	tables := make([][][MinColumns]float64, motion.NumMarkers)
	for _, m := range motion.Markers() {
		path := s.Path(key, m)
		rows, err := readTable(path)
		if err != nil {
			return nil, &LoadError{Key: key, Marker: m, Path: path, Wrapped: err}
		}
		if len(rows) == 0 {
			return nil, &LoadError{Key: key, Marker: m, Path: path, Wrapped: ErrEmpty}
		}
		if m != motion.Chest && len(rows) != len(tables[motion.Chest]) {
			return nil, &LoadError{
				Key:    key,
				Marker: m,
				Path:   path,
				Wrapped: fmt.Errorf("%d rows, %s has %d: %w",
					len(rows), motion.Chest.FileName(), len(tables[motion.Chest]), ErrRowMismatch),
			}
		}
		tables[m] = rows
	}

	n := len(tables[motion.Chest])
	time := make([]float64, n)
	for i, row := range tables[motion.Chest] {
		time[i] = row[0]
	}

	posX := mat.NewDense(motion.NumMarkers, n, nil)
	posY := mat.NewDense(motion.NumMarkers, n, nil)
	for m, rows := range tables {
		drift := 0.0
		for i, row := range rows {
			posX.Set(m, i, row[1])
			posY.Set(m, i, row[2])
			drift = math.Max(drift, math.Abs(row[0]-time[i]))
		}
		if drift > timeTolerance {
			s.log.Warn().
				Str("recording", key.String()).
				Str("marker", motion.Marker(m).String()).
				Float64("max_drift", drift).
				Msg("marker time column differs from shared axis")
		}
	}

	series, err := motion.NewSeries(key, time, posX, posY)
	if err != nil {
		return nil, &LoadError{Key: key, Marker: -1, Path: s.Dir(key), Wrapped: err}
	}

	s.log.Debug().
		Str("recording", key.String()).
		Int("samples", n).
		Float64("duration", series.Duration()).
		Msg("loaded recording")
	return series, nil
}

func readTable(path string) ([][MinColumns]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %w", ErrMissingFile, err)
		}
		return nil, err
	}
	defer f.Close()
	return ParseTable(f)
}

// LoadAll loads every condition and jump type. The first failure aborts.
func (s *Store) LoadAll() (motion.Dataset, error) {
	ds := make(motion.Dataset)
	for _, c := range motion.Conditions() {
		for _, j := range motion.JumpTypes() {
			series, err := s.Load(c, j)
			if err != nil {
				return nil, err
			}
			ds[series.Key()] = series
		}
	}
	return ds, nil
}

// List returns the recordings whose directory holds a first marker file.
func (s *Store) List() ([]motion.Key, error) {
	keys := make([]motion.Key, 0, 4)
	for _, c := range motion.Conditions() {
		for _, j := range motion.JumpTypes() {
			key := motion.Key{Condition: c, JumpType: j}
			_, err := os.Stat(s.Path(key, motion.Chest))
			if err != nil {
				if errors.Is(err, fs.ErrNotExist) {
					continue
				}
				return nil, err
			}
			keys = append(keys, key)
		}
	}
	return keys, nil
}

// Save writes series as six marker files in the layout Load reads.
func (s *Store) Save(series *motion.Series) error {
	key := series.Key()
	if err := os.MkdirAll(s.Dir(key), 0755); err != nil {
		return err
	}

	time := series.Time()
	for _, m := range motion.Markers() {
		if err := writeMarker(s.Path(key, m), time, series.Position(m, motion.X), series.Position(m, motion.Y)); err != nil {
			return fmt.Errorf("save %s %s: %w", key, m, err)
		}
	}
	s.log.Debug().Str("recording", key.String()).Str("dir", s.Dir(key)).Msg("saved recording")
	return nil
}

func writeMarker(path string, time, x, y []float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if _, err := w.WriteString("# time x y\n"); err != nil {
		return err
	}
	for i := range time {
		line := strconv.FormatFloat(time[i], 'g', -1, 64) + " " +
			strconv.FormatFloat(x[i], 'g', -1, 64) + " " +
			strconv.FormatFloat(y[i], 'g', -1, 64) + "\n"
		if _, err := w.WriteString(line); err != nil {
			return err
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}
	return f.Close()
}
