package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"svw.info/phitinh/internal/annual"
	"svw.info/phitinh/internal/board"
	"svw.info/phitinh/internal/compass"
	"svw.info/phitinh/internal/domain"
	"svw.info/phitinh/internal/flight"
	"svw.info/phitinh/internal/metrics"
	"svw.info/phitinh/internal/ports"
)

type Service struct {
	Validator ports.Validator
	Storage   ports.Storage
	Cache     ports.Cache
	Log       *slog.Logger
	// Workers bounds sweep concurrency; 0 means one per mountain.
	Workers int
}

func NewService(v ports.Validator, st ports.Storage, c ports.Cache, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{Validator: v, Storage: st, Cache: c, Log: log}
}

var ErrNotConfigured = errors.New("usecase dependency not configured")

func cacheKey(year int, facing float64) string {
	return "phitinh:chart:" + strconv.Itoa(year) + ":" + strconv.FormatFloat(compass.Normalize(facing), 'g', -1, 64)
}

// Chart builds (or fetches from cache) the chart for year and facing degrees.
func (u *Service) Chart(ctx context.Context, year int, facing float64) (*domain.BoardResult, ports.Stats, error) {
	start := time.Now()
	key := cacheKey(year, facing)
	if res, ok := u.cached(ctx, key); ok {
		return res, ports.Stats{Charts: 1, Cached: true, Duration: time.Since(start)}, nil
	}

	res := board.Build(year, facing)
	u.checkGrids(ctx, &res)
	u.store(ctx, key, &res)

	metrics.ChartsTotal.WithLabelValues(string(res.Facing.Kind)).Inc()
	if res.Gate != nil {
		metrics.GatesTotal.WithLabelValues("found").Inc()
	} else {
		metrics.GatesTotal.WithLabelValues("none").Inc()
	}
	dur := time.Since(start)
	metrics.ChartDurationMs.Observe(float64(dur.Microseconds()) / 1000)
	return &res, ports.Stats{Charts: 1, Duration: dur}, nil
}

// ChartByMountain draws the chart on the centre line of the named mountain.
func (u *Service) ChartByMountain(ctx context.Context, year int, name string) (*domain.BoardResult, ports.Stats, error) {
	m, err := compass.Lookup(name)
	if err != nil {
		return nil, ports.Stats{}, fmt.Errorf("%w: %q", err, name)
	}
	return u.Chart(ctx, year, m.Center)
}

func (u *Service) cached(ctx context.Context, key string) (*domain.BoardResult, bool) {
	if u.Cache == nil {
		return nil, false
	}
	raw, ok, err := u.Cache.Get(ctx, key)
	if err != nil {
		u.Log.Warn("cache get failed", "key", key, "err", err)
		return nil, false
	}
	if !ok {
		metrics.CacheMissesTotal.Inc()
		return nil, false
	}
	var res domain.BoardResult
	if err := json.Unmarshal(raw, &res); err != nil {
		u.Log.Warn("cache entry unreadable", "key", key, "err", err)
		return nil, false
	}
	metrics.CacheHitsTotal.Inc()
	return &res, true
}

func (u *Service) store(ctx context.Context, key string, res *domain.BoardResult) {
	if u.Cache == nil {
		return
	}
	raw, err := json.Marshal(res)
	if err != nil {
		u.Log.Warn("cache encode failed", "key", key, "err", err)
		return
	}
	if err := u.Cache.Set(ctx, key, raw); err != nil {
		u.Log.Warn("cache set failed", "key", key, "err", err)
	}
}

// checkGrids logs any grid that is not a permutation. Flying always yields
// one, so a hit here is a bug.
func (u *Service) checkGrids(ctx context.Context, res *domain.BoardResult) {
	if u.Validator == nil {
		return
	}
	grids := map[string]domain.BoardGrid{"van": res.Boards.Van, "huong": res.Boards.Huong, "son": res.Boards.Son}
	if res.Alternate != nil {
		grids["alt-huong"] = res.Alternate.Boards.Huong
		grids["alt-son"] = res.Alternate.Boards.Son
	}
	for name, g := range grids {
		ok, conf, err := u.Validator.Validate(ctx, g)
		if err != nil || ok {
			continue
		}
		metrics.InvalidGridsTotal.Inc()
		u.Log.Error("invalid star grid", "grid", name, "conflicts", conf, "period_start", res.Period.StartYear, "facing", res.Facing.Degrees)
	}
}

// Annual returns the yearly reading for a direction key such as "bac".
func (u *Service) Annual(ctx context.Context, year int, dir string) (domain.AnnualReading, error) {
	o, err := domain.ParseOctant(dir)
	if err != nil {
		return domain.AnnualReading{}, fmt.Errorf("%w: %q", err, dir)
	}
	return annual.Calculate(year, o), nil
}

func (u *Service) Validate(ctx context.Context, g domain.BoardGrid) (bool, []domain.CellCoord, error) {
	if u.Validator == nil {
		return false, nil, ErrNotConfigured
	}
	return u.Validator.Validate(ctx, g)
}

// Mountains lists the 24-mountain ring.
func (u *Service) Mountains() []domain.Mountain { return compass.Mountains() }

// Sweep draws a chart on every mountain's centre line for year, in parallel,
// and returns one summary per mountain in ring order.
func (u *Service) Sweep(ctx context.Context, year int) ([]domain.SweepEntry, ports.Stats, error) {
	start := time.Now()
	ms := compass.Mountains()
	out := make([]domain.SweepEntry, len(ms))

	g, gctx := errgroup.WithContext(ctx)
	if u.Workers > 0 {
		g.SetLimit(u.Workers)
	}
	for i, m := range ms {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res := board.Build(year, m.Center)
			c, _ := flight.PalaceOf(m.Octant)
			out[i] = domain.SweepEntry{
				Mountain:    m.Key,
				Label:       m.Label,
				Center:      m.Center,
				Sitting:     res.Sitting.Mountain.Key,
				FacingStar:  res.Boards.Huong.At(c),
				SittingStar: res.Boards.Son.At(c),
				Gate:        res.Gate,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, ports.Stats{}, err
	}
	metrics.SweepsTotal.Inc()
	return out, ports.Stats{Charts: len(out), Duration: time.Since(start)}, nil
}

// Persistence
func (u *Service) Save(ctx context.Context, c *domain.Chart) error {
	if u.Storage == nil {
		return ErrNotConfigured
	}
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.CreatedAt == 0 {
		c.CreatedAt = time.Now().UnixNano()
	}
	return u.Storage.Save(ctx, c)
}

// Load returns a saved chart and its freshly computed result.
func (u *Service) Load(ctx context.Context, id string) (*domain.Chart, *domain.BoardResult, error) {
	if u.Storage == nil {
		return nil, nil, ErrNotConfigured
	}
	c, err := u.Storage.Load(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	res, _, err := u.Chart(ctx, c.Year, c.Facing)
	if err != nil {
		return nil, nil, err
	}
	return c, res, nil
}

func (u *Service) List(ctx context.Context) ([]domain.ChartMeta, error) {
	if u.Storage == nil {
		return nil, ErrNotConfigured
	}
	return u.Storage.List(ctx)
}

func (u *Service) Delete(ctx context.Context, id string) error {
	if u.Storage == nil {
		return ErrNotConfigured
	}
	return u.Storage.Delete(ctx, id)
}
