package blocks

import (
	"math"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

func TestAirViewIsEmpty(t *testing.T) {
	r := newTestRegistry(t)

	in := r.NewInstance(KindAir, Placement{})
	v := in.View(time.Now())

	if !v.Empty() {
		t.Fatal("air view is not empty")
	}
}

func TestSharedPrimitiveView(t *testing.T) {
	r := newTestRegistry(t)

	in := r.NewInstance(KindStone, Placement{})
	v := in.View(time.Now())

	if v.Mesh != r.ResourcesFor(KindStone).Primitive {
		t.Fatal("view does not borrow the kind's primitive mesh")
	}
	if v.Model != mgl32.Ident4() {
		t.Fatalf("unrotated block has non-identity model: %v", v.Model)
	}
	if v.Tint != (mgl32.Vec3{1, 1, 1}) {
		t.Fatalf("undamaged stone tint = %v, want white", v.Tint)
	}
}

func TestOrientationRotatesAroundUpAxis(t *testing.T) {
	r := newTestRegistry(t)

	in := r.NewInstance(KindStone, Placement{Orientation: 1})
	v := in.View(time.Now())

	// One quarter turn around +Z maps +X onto +Y.
	got := v.Model.Mul4x1(mgl32.Vec4{1, 0, 0, 0})
	want := mgl32.Vec4{0, 1, 0, 0}
	if !got.ApproxEqualThreshold(want, 1e-6) {
		t.Fatalf("quarter turn maps +X to %v, want %v", got, want)
	}
}

func TestDamageDarkensTint(t *testing.T) {
	r := newTestRegistry(t)

	in := r.NewInstance(KindStone, Placement{})
	in.Damage = 128
	v := in.View(time.Now())

	want := float32(1 - 128.0/512.0)
	if math.Abs(float64(v.Tint.X()-want)) > 1e-6 {
		t.Fatalf("damaged tint = %v, want uniform %v", v.Tint, want)
	}
}

func TestPusherHeadFollowsState(t *testing.T) {
	r := newTestRegistry(t)

	retracted := r.NewInstance(KindPusher, Placement{})
	extended := r.NewInstance(KindPusher, Placement{State: PusherExtended})

	now := time.Now()
	rv := retracted.View(now)
	ev := extended.View(now)

	if rv.Mesh == nil || len(rv.Parts) != 1 {
		t.Fatalf("pusher view should have a body and one head part, got %d parts", len(rv.Parts))
	}

	headZ := func(v DrawableView) float32 {
		return v.Parts[0].Model.Col(3).Z()
	}
	if headZ(rv) != pusherRetractedOffset {
		t.Fatalf("retracted head offset = %v, want %v", headZ(rv), pusherRetractedOffset)
	}
	if headZ(ev) != pusherExtendedOffset {
		t.Fatalf("extended head offset = %v, want %v", headZ(ev), pusherExtendedOffset)
	}
}

func TestBeaconPulses(t *testing.T) {
	r := newTestRegistry(t)

	in := r.NewInstance(KindBeacon, Placement{})
	base := time.Unix(0, 0)

	bright := in.View(base.Add(time.Second)).Tint
	dim := in.View(base.Add(3 * time.Second)).Tint

	if bright.X() <= dim.X() {
		t.Fatalf("beacon tint does not pulse: peak %v vs trough %v", bright, dim)
	}
	if v := in.View(base); v.Mesh != r.ResourcesFor(KindBeacon).Primitive {
		t.Fatal("beacon does not borrow the shared primitive")
	}
}
