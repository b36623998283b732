// Package ioseed fills the backend with plants read from a YAML file.
package ioseed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/gnames/acervo/internal/ioapi"
	"github.com/gnames/acervo/pkg/api"
	"github.com/gnames/acervo/pkg/plant"
	"gopkg.in/yaml.v3"
)

type seedFile struct {
	Plants []plant.Input `yaml:"plants"`
}

// Parse reads plants from YAML. Every plant must have all fields filled.
func Parse(data []byte) ([]plant.Input, error) {
	var sf seedFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, SeedFileError("YAML inválido", err)
	}
	for i, v := range sf.Plants {
		if missing := v.Missing(); len(missing) > 0 {
			reason := fmt.Sprintf("planta #%d sem %s", i+1,
				strings.Join(missing, ", "))
			return nil, SeedFileError(reason, errors.New("missing fields"))
		}
	}
	return sf.Plants, nil
}

// Report summarizes a seed run.
type Report struct {
	// Created is the number of plants added to the backend.
	Created int
	// Skipped plants already existed.
	Skipped  int
	Duration time.Duration
}

// Option configures Run.
type Option func(*seeder)

// OptProgress shows a progress bar on the terminal.
func OptProgress(b bool) Option {
	return func(s *seeder) {
		s.progress = b
	}
}

type seeder struct {
	progress bool
}

// Run creates plants that are not in the catalog yet. A plant exists when
// the catalog has a record with the same scientific name, ignoring case.
// Plants are created one by one in file order, the first failure stops
// the run.
func Run(
	ctx context.Context,
	cl api.Client,
	plants []plant.Input,
	opts ...Option,
) (Report, error) {
	var s seeder
	for _, opt := range opts {
		opt(&s)
	}

	var res Report
	start := time.Now()

	existing, err := cl.ListAll(ctx)
	if err != nil {
		res.Duration = time.Since(start)
		return res, err
	}
	names := make(map[string]struct{}, len(existing))
	for _, v := range existing {
		names[key(v.ScientificName)] = struct{}{}
	}

	var bar *pb.ProgressBar
	if s.progress {
		bar = pb.Full.Start(len(plants))
		bar.Set("prefix", "Adicionando plantas: ")
		bar.Set(pb.CleanOnFinish, true)
		defer bar.Finish()
	}

	for _, v := range plants {
		if bar != nil {
			bar.Increment()
		}
		if _, ok := names[key(v.ScientificName)]; ok {
			slog.Info("Plant already in catalog", "name", v.ScientificName)
			res.Skipped++
			continue
		}

		p, err := cl.Create(ctx, v)
		if ioapi.IsStatus(err, http.StatusBadRequest) {
			slog.Warn("Plant refused as duplicate", "name", v.ScientificName)
			res.Skipped++
			continue
		}
		if err != nil {
			res.Duration = time.Since(start)
			return res, SeedCreateError(v.ScientificName, res.Created, err)
		}
		slog.Info("Plant created", "id", p.ID, "name", v.ScientificName)
		names[key(v.ScientificName)] = struct{}{}
		res.Created++
	}
	res.Duration = time.Since(start)
	return res, nil
}

func key(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
