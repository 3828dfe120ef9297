package scanner

import (
	"context"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/Unified-Physics-Research/THE-IMPERIAL-CHALLENGE/pkg/boundary"
	"github.com/Unified-Physics-Research/THE-IMPERIAL-CHALLENGE/pkg/config"
)

var _ = Describe("RadialProfile", func() {
	var (
		s   *Scanner
		ctx context.Context
	)

	BeforeEach(func() {
		engine, err := boundary.NewEngine(config.Default())
		Expect(err).NotTo(HaveOccurred())
		s, err = New(engine, nil)
		Expect(err).NotTo(HaveOccurred())
		ctx = context.Background()
	})

	It("should sample chi along the diagonal ray", func() {
		p, err := s.RadialProfile(ctx, 1.0, 1000)
		Expect(err).NotTo(HaveOccurred())

		Expect(p.Radii).To(HaveLen(1000))
		Expect(p.Chi).To(HaveLen(1000))
		Expect(p.Radii[0]).To(Equal(0.0))
		Expect(p.Radii[999]).To(BeNumerically("~", 1.0, 1e-12))
		Expect(p.Chi[0]).To(Equal(0.0))

		// With unit energy ratio, chi(r) = r/(1+r²) along any ray.
		for i, r := range p.Radii {
			Expect(p.Chi[i]).To(BeNumerically("~", r/(1+r*r), 1e-9))
		}
	})

	It("should locate the threshold crossing near the analytic root", func() {
		p, err := s.RadialProfile(ctx, 1.0, 1000)
		Expect(err).NotTo(HaveOccurred())

		// r/(1+r²) = 0.15 has its lower root at (1-√0.91)/0.3 ≈ 0.1535.
		root := (1 - math.Sqrt(1-4*0.15*0.15)) / (2 * 0.15)
		Expect(p.CriticalRadius).To(BeNumerically("~", root, 2.0/999))
		Expect(p.CriticalChi).To(BeNumerically("~", 0.15, 0.01))
	})

	It("should respect a configured threshold", func() {
		cfg := config.Default()
		cfg.Threshold = 0.3
		engine, err := boundary.NewEngine(cfg)
		Expect(err).NotTo(HaveOccurred())
		strict, err := New(engine, nil)
		Expect(err).NotTo(HaveOccurred())

		p, err := strict.RadialProfile(ctx, 1.0, 1000)
		Expect(err).NotTo(HaveOccurred())

		// r/(1+r²) = 0.3 crosses at (1-0.8)/0.6 ≈ 0.3333.
		Expect(p.CriticalRadius).To(BeNumerically("~", 1.0/3, 0.01))
	})

	It("should reject invalid parameters", func() {
		_, err := s.RadialProfile(ctx, 0, 100)
		Expect(err).To(MatchError(ErrInvalidRange))

		_, err = s.RadialProfile(ctx, math.Inf(1), 100)
		Expect(err).To(MatchError(ErrInvalidRange))

		_, err = s.RadialProfile(ctx, 1.0, 1)
		Expect(err).To(MatchError(ErrInvalidResolution))
	})

	It("should abort on cancellation", func() {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := s.RadialProfile(cancelled, 1.0, 100)
		Expect(err).To(MatchError(context.Canceled))
	})
})
