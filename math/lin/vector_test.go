// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

import "testing"

func TestV2Add(t *testing.T) {
	got := V2{1, 2}.Add(V2{3, 4})
	if !got.Eq(V2{4, 6}) {
		t.Errorf("Add: got %v", got)
	}
}

func TestV2Sub(t *testing.T) {
	got := V2{5, 5}.Sub(V2{2, 1})
	if !got.Eq(V2{3, 4}) {
		t.Errorf("Sub: got %v", got)
	}
}

func TestV2Scale(t *testing.T) {
	got := V2{2, 3}.Scale(2)
	if !got.Eq(V2{4, 6}) {
		t.Errorf("Scale: got %v", got)
	}
}

func TestV2RotateQuarterTurn(t *testing.T) {
	got := V2{1, 0}.Rotate(90)
	if !got.Aeq(V2{0, 1}) {
		t.Errorf("Rotate(90): got %v, want (0,1)", got)
	}
}

func TestV2Lerp(t *testing.T) {
	got := V2{0, 0}.Lerp(V2{10, 10}, 0.5)
	if !got.Aeq(V2{5, 5}) {
		t.Errorf("Lerp: got %v", got)
	}
}
