package comparison

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"parcel-recon/core/database"
	"parcel-recon/core/reconcile"
	"parcel-recon/core/report"
	"parcel-recon/core/rules"
	"parcel-recon/core/storage"
	"parcel-recon/core/table"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrInvalidUpload marks unreadable or empty uploaded extracts. Errors
// wrapping it map to HTTP 400.
var ErrInvalidUpload = errors.New("invalid upload")

// ErrNoCAMASource reports a run with no CAMA file and no database source.
var ErrNoCAMASource = errors.New("no CAMA source: upload a file or enable the database source")

// Overrides are the per-request comparison settings. Nil fields keep the
// configured defaults.
type Overrides struct {
	Tolerance *float64
	SkipZero  *bool
	WindowID  *string
}

// Service runs comparisons between MLS and CAMA extracts.
type Service struct {
	cfg      reconcile.Config
	ruleSet  *rules.Set
	store    storage.Client
	storeCfg storage.Config
	db       *gorm.DB
	dbCfg    database.Config
	logger   *zap.Logger
}

// NewService creates a comparison service. The rule set comes from the
// configured YAML file when set, otherwise the built-in Stark County
// defaults.
func NewService(cfg reconcile.Config, store storage.Client, storeCfg storage.Config, db *gorm.DB, dbCfg database.Config, logger *zap.Logger) (*Service, error) {
	set := rules.Defaults()
	if cfg.RulesFile != "" {
		loaded, err := rules.LoadFile(cfg.RulesFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load rules file %s: %w", cfg.RulesFile, err)
		}
		set = loaded
	}
	if err := set.Validate(); err != nil {
		return nil, fmt.Errorf("invalid rule set: %w", err)
	}

	return &Service{
		cfg:      cfg,
		ruleSet:  set,
		store:    store,
		storeCfg: storeCfg,
		db:       db,
		dbCfg:    dbCfg,
		logger:   logger,
	}, nil
}

// RuleSet returns the rule set the service evaluates.
func (s *Service) RuleSet() *rules.Set {
	return s.ruleSet
}

// Run parses both extracts and reconciles them. camaData may be nil when
// the database-backed CAMA source is enabled.
func (s *Service) Run(ctx context.Context, mlsData, camaData []byte, ov Overrides) (*reconcile.Result, error) {
	mls, err := table.ParseCSVBytes(mlsData)
	if err != nil {
		return nil, fmt.Errorf("%w: MLS file: %v", ErrInvalidUpload, err)
	}

	cama, err := s.camaTable(camaData)
	if err != nil {
		return nil, err
	}

	cfg := s.cfg
	if ov.Tolerance != nil {
		cfg.Tolerance = *ov.Tolerance
	}
	if ov.SkipZero != nil {
		cfg.SkipZero = *ov.SkipZero
	}
	if ov.WindowID != nil {
		cfg.WindowID = *ov.WindowID
	}

	res, err := reconcile.Reconcile(mls, cama, s.ruleSet, cfg)
	if err != nil {
		return res, err
	}

	s.logger.Info("Comparison finished",
		zap.Int("mls_records", res.Summary.MLSRecords),
		zap.Int("cama_records", res.Summary.CAMARecords),
		zap.Int("mismatches", res.Summary.Mismatches),
		zap.Int("perfect_matches", res.Summary.PerfectMatches),
		zap.Float64("match_rate", res.Summary.MatchRate),
	)
	return res, nil
}

// Export runs a comparison and renders the ZIP report bundle. When the
// report archive is enabled, the bundle is also copied to object storage;
// archival failures are logged and do not fail the export.
func (s *Service) Export(ctx context.Context, mlsData, camaData []byte, ov Overrides) (string, []byte, error) {
	res, err := s.Run(ctx, mlsData, camaData, ov)
	if err != nil {
		return "", nil, err
	}

	now := time.Now()
	data, err := report.Build(res, now)
	if err != nil {
		return "", nil, err
	}
	name := report.BundleName(now)

	if s.store != nil && s.storeCfg.Enabled {
		if err := s.archive(ctx, name, data); err != nil {
			s.logger.Warn("Report archival failed", zap.Error(err))
		}
	}

	return name, data, nil
}

func (s *Service) archive(ctx context.Context, name string, data []byte) error {
	if err := storage.EnsureBucket(ctx, s.store, s.storeCfg); err != nil {
		return err
	}

	_, err := s.store.PutObject(ctx, s.storeCfg.Bucket, name,
		bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: "application/zip"})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", name, err)
	}

	s.logger.Info("Report bundle archived",
		zap.String("bucket", s.storeCfg.Bucket),
		zap.String("object", name),
	)
	return nil
}

func (s *Service) camaTable(camaData []byte) (*table.Table, error) {
	if camaData != nil {
		t, err := table.ParseCSVBytes(camaData)
		if err != nil {
			return nil, fmt.Errorf("%w: CAMA file: %v", ErrInvalidUpload, err)
		}
		return t, nil
	}

	if s.db == nil || !s.dbCfg.Enabled {
		return nil, ErrNoCAMASource
	}

	t, err := database.LoadTable(s.db, s.dbCfg.Table)
	if err != nil {
		return nil, fmt.Errorf("failed to load CAMA table: %w", err)
	}
	return t, nil
}
