package main

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/urfave/cli/v2"

	"github.com/pdrpinto/gridpath"
	"github.com/pdrpinto/gridpath/mapfile"
)

func planAction(cCtx *cli.Context) error {
	var (
		registry = prometheus.NewRegistry()
		options  []gridpath.AgentOption
	)
	if cCtx.Bool(MetricsFlag) {
		metrics, err := gridpath.NewMetrics(registry)
		if err != nil {
			return err
		}
		options = append(options, gridpath.WithMetrics(metrics))
	}

	s, err := newSession(cCtx, false, options...)
	if err != nil {
		return err
	}
	defer s.logger.Sync() // nolint: errcheck

	route, err := s.agent.Plan()
	if err != nil {
		return err
	}
	result := s.agent.LastResult()
	w := cCtx.App.Writer

	fmt.Fprintf(w, "strategy: %s\n", s.label())
	switch {
	case result.Truncated:
		fmt.Fprintf(w, "search budget exhausted (expanded %d)\n", result.ExpandedNodes)
	case len(route) == 0:
		fmt.Fprintf(w, "no path found (expanded %d)\n", result.ExpandedNodes)
	default:
		fmt.Fprintf(w, "route: %d cells, cost %g, expanded %d\n", len(route), result.TotalCost, result.ExpandedNodes)
		moves, err := route.Directions()
		if err != nil {
			return err
		}
		names := make([]string, len(moves))
		for i, m := range moves {
			names[i] = m.String()
		}
		fmt.Fprintf(w, "moves: %s\n", strings.Join(names, " "))
	}
	if err := mapfile.Encode(w, s.grid, route); err != nil {
		return err
	}

	if cCtx.Bool(MetricsFlag) {
		families, err := registry.Gather()
		if err != nil {
			return errors.Wrap(err, "gather metrics")
		}
		for _, mf := range families {
			if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
				return errors.Wrap(err, "write metrics")
			}
		}
	}
	return nil
}
