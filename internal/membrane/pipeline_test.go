package membrane_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/membrane/internal/curve"
	"github.com/san-kum/membrane/internal/geom"
	"github.com/san-kum/membrane/internal/hull"
	"github.com/san-kum/membrane/internal/membrane"
	"github.com/san-kum/membrane/internal/scene"
)

var _ = Describe("Compute", func() {
	var params membrane.Params

	BeforeEach(func() {
		params = membrane.DefaultParams()
	})

	Context("with a single circle", func() {
		var frame membrane.Frame
		center := geom.Pt(100, 100)

		BeforeEach(func() {
			frame = membrane.Compute([]scene.Circle{{X: 100, Y: 100, R: 10}}, params)
		})

		It("samples 50 points at radius 26", func() {
			Expect(frame.Points).To(HaveLen(50))
			for _, p := range frame.Points {
				Expect(geom.Dist(center, p)).To(BeNumerically("~", 26, 1e-9))
			}
		})

		It("builds a hull approximating the sampling circle", func() {
			Expect(len(frame.Hull)).To(BeNumerically(">=", 3))
			Expect(hull.MinTurn(frame.Hull)).To(BeNumerically(">", 0))
			Expect(hull.Perimeter(frame.Hull)).To(BeNumerically("~", 2*math.Pi*26, 1))
		})

		It("produces a closed rounded loop around the centre", func() {
			Expect(frame.Err).NotTo(HaveOccurred())
			Expect(frame.HasMembrane()).To(BeTrue())
			Expect(frame.Path.Closed()).To(BeTrue())
			Expect(frame.Path.Len()).To(Equal(len(frame.Hull)))

			for _, p := range frame.Path.Flatten(4) {
				Expect(geom.Dist(center, p)).To(BeNumerically("~", 26, 0.2))
			}
		})
	})

	Context("with two distant circles", func() {
		var (
			circles []scene.Circle
			frame   membrane.Frame
		)

		BeforeEach(func() {
			circles = []scene.Circle{{X: 0, Y: 0, R: 5}, {X: 1000, Y: 1000, R: 5}}
			frame = membrane.Compute(circles, params)
		})

		It("bridges both circles with one strictly convex hull", func() {
			Expect(frame.Points).To(HaveLen(100))
			Expect(hull.MinTurn(frame.Hull)).To(BeNumerically(">", 0))

			var near, far int
			for _, v := range frame.Hull {
				if geom.Dist(v, circles[0].Center()) < 22 {
					near++
				} else if geom.Dist(v, circles[1].Center()) < 22 {
					far++
				}
			}
			Expect(near).To(BeNumerically(">", 0))
			Expect(far).To(BeNumerically(">", 0))
			Expect(near + far).To(Equal(len(frame.Hull)))
		})

		It("contains every sample point", func() {
			for _, p := range frame.Points {
				Expect(hull.Contains(frame.Hull, p, 1e-9)).To(BeTrue())
			}
		})

		It("is elongated along the diagonal", func() {
			diag := 1000 * math.Sqrt2
			Expect(hull.Perimeter(frame.Hull)).To(BeNumerically(">", 2*diag))
			Expect(hull.Area(frame.Hull)).To(BeNumerically("~", 2*21*diag+math.Pi*21*21, 200))
		})
	})

	Context("with degenerate input", func() {
		It("reports a degenerate hull for an empty scene", func() {
			frame := membrane.Compute(nil, params)
			Expect(frame.Points).To(BeEmpty())
			Expect(frame.Hull).To(BeEmpty())
			Expect(frame.Err).To(MatchError(curve.ErrDegenerateHull))
			Expect(frame.HasMembrane()).To(BeFalse())
		})

		It("reports a degenerate hull when sampling is too sparse", func() {
			params.SamplesPerCircle = 2
			frame := membrane.Compute([]scene.Circle{{X: 0, Y: 0, R: 5}}, params)
			Expect(frame.Points).To(HaveLen(2))
			Expect(frame.Hull).To(HaveLen(2))
			Expect(frame.Err).To(MatchError(curve.ErrDegenerateHull))
		})
	})

	It("is idempotent on an unchanged scene", func() {
		circles := []scene.Circle{{X: 97, Y: 178, R: 5}, {X: 217, Y: 128, R: 36.9}, {X: 90, Y: 88, R: 48.2}}
		a := membrane.Compute(circles, params)
		b := membrane.Compute(circles, params)
		Expect(b.Hull).To(Equal(a.Hull))
		Expect(b.Path).To(Equal(a.Path))
	})

	It("reflects edits between calls", func() {
		store := scene.NewStore(5, scene.Circle{X: 0, Y: 0, R: 10})
		before := membrane.Compute(store.Circles(), params)
		Expect(store.Move(0, 500, 0)).To(Succeed())
		after := membrane.Compute(store.Circles(), params)
		Expect(after.Path.Start.X - before.Path.Start.X).To(BeNumerically("~", 500, 1e-9))
	})

	It("summarises a frame", func() {
		frame := membrane.Compute([]scene.Circle{{X: 0, Y: 0, R: 10}}, params)
		s := frame.Stats(1)
		Expect(s.Circles).To(Equal(1))
		Expect(s.Samples).To(Equal(50))
		Expect(s.Vertices).To(Equal(len(frame.Hull)))
		Expect(s.Area).To(BeNumerically(">", 0))
	})
})
