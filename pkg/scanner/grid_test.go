package scanner

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/google/go-cmp/cmp"

	"github.com/Unified-Physics-Research/THE-IMPERIAL-CHALLENGE/pkg/boundary"
	"github.com/Unified-Physics-Research/THE-IMPERIAL-CHALLENGE/pkg/config"
)

var _ = Describe("ScanGrid", func() {
	var (
		s   *Scanner
		ctx context.Context
	)

	req := Request{XMin: -1, XMax: 1, YMin: -1, YMax: 1, Resolution: 25}

	BeforeEach(func() {
		engine, err := boundary.NewEngine(config.Default())
		Expect(err).NotTo(HaveOccurred())
		s, err = New(engine, nil)
		Expect(err).NotTo(HaveOccurred())
		ctx = context.Background()
	})

	It("should shape the grid to the request", func() {
		grid, err := s.ScanGrid(ctx, req)
		Expect(err).NotTo(HaveOccurred())

		Expect(grid.X).To(HaveLen(25))
		Expect(grid.Y).To(HaveLen(25))
		Expect(grid.Chi).To(HaveLen(25))
		Expect(grid.Valid).To(HaveLen(25))
		for j := range grid.Chi {
			Expect(grid.Chi[j]).To(HaveLen(25))
			Expect(grid.Valid[j]).To(HaveLen(25))
		}

		Expect(grid.X[0]).To(Equal(-1.0))
		Expect(grid.X[24]).To(BeNumerically("~", 1.0, 1e-12))
		Expect(grid.Y[0]).To(Equal(-1.0))
		Expect(grid.Y[24]).To(BeNumerically("~", 1.0, 1e-12))
	})

	It("should agree with Scan on the aggregates", func() {
		grid, err := s.ScanGrid(ctx, req)
		Expect(err).NotTo(HaveOccurred())
		result, err := s.Scan(ctx, req)
		Expect(err).NotTo(HaveOccurred())

		Expect(cmp.Diff(&grid.Result, result)).To(BeEmpty())
	})

	It("should keep validity flags consistent with chi values", func() {
		grid, err := s.ScanGrid(ctx, req)
		Expect(err).NotTo(HaveOccurred())

		cfg := config.Default()
		for j := range grid.Chi {
			for i := range grid.Chi[j] {
				want := grid.Chi[j][i] <= cfg.Threshold+cfg.Tolerance
				Expect(grid.Valid[j][i]).To(Equal(want),
					"point (%v, %v) chi=%v", grid.X[i], grid.Y[j], grid.Chi[j][i])
			}
		}
	})

	It("should be symmetric under point reflection", func() {
		grid, err := s.ScanGrid(ctx, req)
		Expect(err).NotTo(HaveOccurred())

		n := req.Resolution - 1
		for j := 0; j <= n; j++ {
			for i := 0; i <= n; i++ {
				// The window is symmetric about the origin, so chi at the
				// mirrored index is chi at the point's reflection.
				Expect(grid.Chi[j][i]).To(BeNumerically("~", grid.Chi[n-j][n-i], 1e-12))
			}
		}
	})

	It("should validate the request", func() {
		_, err := s.ScanGrid(ctx, Request{XMin: 1, XMax: -1, YMin: -1, YMax: 1, Resolution: 10})
		Expect(err).To(MatchError(ErrInvalidRange))

		_, err = s.ScanGrid(ctx, Request{XMin: -1, XMax: 1, YMin: -1, YMax: 1, Resolution: 0})
		Expect(err).To(MatchError(ErrInvalidResolution))
	})

	It("should abort on cancellation", func() {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := s.ScanGrid(cancelled, req)
		Expect(err).To(MatchError(context.Canceled))
	})
})
