package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"syscall"

	"svw.info/phitinh/internal/compass"
	"svw.info/phitinh/internal/domain"
	"svw.info/phitinh/internal/ports"
)

// FS keeps one JSON file per chart under a folder named for the facing octant.
type FS struct{ dir string }

func NewFS(dir string) *FS { return &FS{dir: dir} }

func (s *FS) pathFor(id string, facing float64) string {
	sub := string(compass.FindMountain(facing).Octant)
	return filepath.Join(s.dir, sub, id+".json")
}

// candidates lists every place a chart with id may live; the flat layout
// comes last.
func (s *FS) candidates(id string) []string {
	out := make([]string, 0, len(domain.OctantRing)+1)
	for _, o := range domain.OctantRing {
		out = append(out, filepath.Join(s.dir, string(o), id+".json"))
	}
	return append(out, filepath.Join(s.dir, id+".json"))
}

// validID rejects empty IDs, path separators and surrounding whitespace so
// that an ID always maps to exactly one file name.
func validID(id string) bool {
	return id != "" && id == strings.TrimSpace(id) &&
		!strings.ContainsAny(id, `/\`) && id != "." && id != ".."
}

// absent reports errors meaning "nothing there", including a bucket path
// that exists as a plain file.
func absent(err error) bool {
	return errors.Is(err, os.ErrNotExist) || errors.Is(err, syscall.ENOTDIR)
}

func (s *FS) Save(ctx context.Context, c *domain.Chart) error {
	if c == nil || !validID(c.ID) {
		return errors.New("invalid chart: missing ID")
	}
	target := s.pathFor(c.ID, c.Facing)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	if err := writeFile(target, c); err != nil {
		return err
	}
	// a changed facing moves the file to another bucket
	if _, err := s.remove(c.ID, target); err != nil {
		return fmt.Errorf("remove stale copy of %s: %w", c.ID, err)
	}
	return nil
}

// writeFile encodes c next to path and renames it into place, so a failed
// write never truncates an existing chart.
func writeFile(path string, c *domain.Chart) error {
	f, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(c); err != nil {
		f.Close()
		os.Remove(f.Name())
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return err
	}
	if err := os.Rename(f.Name(), path); err != nil {
		os.Remove(f.Name())
		return err
	}
	return nil
}

func (s *FS) Load(ctx context.Context, id string) (*domain.Chart, error) {
	if !validID(id) {
		return nil, ports.ErrNotFound
	}
	for _, p := range s.candidates(id) {
		data, err := os.ReadFile(p)
		if absent(err) {
			continue
		}
		if err != nil {
			return nil, err
		}
		var out domain.Chart
		if err := json.Unmarshal(data, &out); err != nil {
			return nil, fmt.Errorf("decode %s: %w", p, err)
		}
		return &out, nil
	}
	return nil, ports.ErrNotFound
}

// remove deletes every copy of id except the one at keep and reports
// whether anything was deleted.
func (s *FS) remove(id, keep string) (bool, error) {
	removed := false
	for _, p := range s.candidates(id) {
		if p == keep {
			continue
		}
		err := os.Remove(p)
		if err == nil {
			removed = true
			continue
		}
		if !absent(err) {
			return removed, err
		}
	}
	return removed, nil
}

func (s *FS) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return ports.ErrNotFound
	}
	removed, err := s.remove(id, "")
	if err != nil {
		return err
	}
	if !removed {
		return ports.ErrNotFound
	}
	return nil
}

func (s *FS) List(ctx context.Context) ([]domain.ChartMeta, error) {
	dirs := make([]string, 0, len(domain.OctantRing)+1)
	for _, o := range domain.OctantRing {
		dirs = append(dirs, filepath.Join(s.dir, string(o)))
	}
	dirs = append(dirs, s.dir)

	var out []domain.ChartMeta
	for _, d := range dirs {
		ents, err := os.ReadDir(d)
		if err != nil {
			if absent(err) {
				continue
			}
			return nil, err
		}
		for _, e := range ents {
			if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
				continue
			}
			data, err := os.ReadFile(filepath.Join(d, e.Name()))
			if err != nil {
				continue
			}
			var c domain.Chart
			if err := json.Unmarshal(data, &c); err != nil || c.ID == "" {
				continue
			}
			out = append(out, domain.ChartMeta{
				ID:        c.ID,
				Name:      c.Name,
				Year:      c.Year,
				Facing:    c.Facing,
				CreatedAt: c.CreatedAt,
			})
		}
	}
	sortNewestFirst(out)
	return out, nil
}

func sortNewestFirst(ms []domain.ChartMeta) {
	sort.SliceStable(ms, func(i, j int) bool {
		if ms[i].CreatedAt != ms[j].CreatedAt {
			return ms[i].CreatedAt > ms[j].CreatedAt
		}
		return ms[i].ID < ms[j].ID
	})
}
