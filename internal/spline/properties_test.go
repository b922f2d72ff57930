package spline_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/splinekit/internal/spline"
)

var _ = Describe("Spline", func() {
	values := []spline.Vec{{0, 0}, {2, 1}, {1, 3}, {-1, 2}, {0, 0.5}}
	args := []float64{0, 1, 2, 3, 4}

	Describe("periodic boundary", func() {
		It("is periodic over the full loop", func() {
			s, err := spline.New(args, values, spline.Periodic[spline.Vec]())
			Expect(err).NotTo(HaveOccurred())

			lo, hi := s.Domain()
			period := hi - lo + 1
			for _, t := range []float64{-7.3, -1, -0.25, 0, 0.5, 1.9, 3.99, 4.5, 6, 12.75} {
				a, b := s.Evaluate(t), s.Evaluate(t+period)
				for d := 0; d < 2; d++ {
					Expect(a.At(d)).To(BeNumerically("~", b.At(d), 1e-9),
						"component %d at t=%v", d, t)
				}
			}
		})

		It("crosses the loop seam continuously", func() {
			s, err := spline.New(args, values, spline.Periodic[spline.Vec]())
			Expect(err).NotTo(HaveOccurred())

			const eps = 1e-7
			// Seam between the closing segment's end and the first
			// segment's start.
			before, after := s.Evaluate(5-eps), s.Evaluate(5+eps)
			for d := 0; d < 2; d++ {
				Expect(before.At(d)).To(BeNumerically("~", after.At(d), 1e-5))
			}
		})
	})

	Describe("natural boundary", func() {
		It("is continuous at the domain edges", func() {
			s, err := spline.New(args, values, spline.Natural[spline.Vec]())
			Expect(err).NotTo(HaveOccurred())

			const eps = 1e-7
			for _, edge := range []float64{0, 4} {
				in, out := s.Evaluate(edge-eps), s.Evaluate(edge+eps)
				for d := 0; d < 2; d++ {
					Expect(in.At(d)).To(BeNumerically("~", out.At(d), 1e-5))
				}
			}
		})
	})

	Describe("clamped boundary", func() {
		start, end := spline.Vec{1, -1}, spline.Vec{0, 2}

		It("is continuous at the domain edges", func() {
			s, err := spline.New(args, values, spline.Clamped(start, end))
			Expect(err).NotTo(HaveOccurred())

			const eps = 1e-7
			for _, edge := range []float64{0, 4} {
				in, out := s.Evaluate(edge-eps), s.Evaluate(edge+eps)
				for d := 0; d < 2; d++ {
					Expect(in.At(d)).To(BeNumerically("~", out.At(d), 1e-5))
				}
			}
		})

		It("matches the supplied tangents across the edges", func() {
			s, err := spline.New(args, values, spline.Clamped(start, end))
			Expect(err).NotTo(HaveOccurred())

			// Central differences straddling each edge recover the
			// clamped tangent: the extension is linear along it and
			// the inner cubic starts with the same slope.
			const h = 1e-6
			for d := 0; d < 2; d++ {
				slope := (s.Evaluate(0+h).At(d) - s.Evaluate(0-h).At(d)) / (2 * h)
				Expect(slope).To(BeNumerically("~", start.At(d), 1e-4))

				slope = (s.Evaluate(4+h).At(d) - s.Evaluate(4-h).At(d)) / (2 * h)
				Expect(slope).To(BeNumerically("~", end.At(d), 1e-4))
			}
		})
	})

	Describe("tangent norms", func() {
		It("reports one norm per control point", func() {
			s, err := spline.New(args, values, spline.Natural[spline.Vec]())
			Expect(err).NotTo(HaveOccurred())
			Expect(s.Norms()).To(HaveLen(len(values)))
			tangents := s.Tangents()
			for i, n := range s.Norms() {
				Expect(n).To(BeNumerically("~", tangents[i].Norm(), 1e-12))
			}
		})
	})
})
