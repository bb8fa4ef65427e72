package workflow

import (
	"reflect"
	"testing"
)

func TestSelection_Toggle(t *testing.T) {
	sel := NewSelection()

	sel.Toggle(7)
	if !sel.Has(7) {
		t.Fatal("id 7 should be selected after first toggle")
	}

	sel.Toggle(7)
	if sel.Has(7) || len(sel) != 0 {
		t.Fatal("id 7 should be deselected after second toggle")
	}
}

func TestSelection_ToggleAllVisible(t *testing.T) {
	visible := []int64{1, 2, 3}

	t.Run("empty selection selects all", func(t *testing.T) {
		sel := NewSelection()
		sel.ToggleAllVisible(visible)
		if want := []int64{1, 2, 3}; !reflect.DeepEqual(sel.IDs(), want) {
			t.Fatalf("ids = %v, want %v", sel.IDs(), want)
		}
	})

	t.Run("own inverse on unchanged visible set", func(t *testing.T) {
		sel := NewSelection()
		sel.ToggleAllVisible(visible)
		sel.ToggleAllVisible(visible)
		if len(sel) != 0 {
			t.Fatalf("selection should be empty after double toggle, got %v", sel.IDs())
		}
	})

	t.Run("partial selection promotes to select-all", func(t *testing.T) {
		sel := NewSelection()
		sel.Toggle(2)
		sel.ToggleAllVisible(visible)
		if want := []int64{1, 2, 3}; !reflect.DeepEqual(sel.IDs(), want) {
			t.Fatalf("ids = %v, want %v", sel.IDs(), want)
		}
	})

	t.Run("equal size but different members promotes to select-all", func(t *testing.T) {
		sel := NewSelection()
		sel.Toggle(2)
		sel.Toggle(3)
		sel.Toggle(9)
		sel.ToggleAllVisible(visible)
		if want := []int64{1, 2, 3}; !reflect.DeepEqual(sel.IDs(), want) {
			t.Fatalf("ids = %v, want %v", sel.IDs(), want)
		}
	})
}

func TestViewState_BucketChangeClearsSelection(t *testing.T) {
	view := NewViewState(BucketReadyToSubmit)
	view.Selection.Toggle(1)
	view.Selection.Toggle(2)

	view.SetBucket(BucketNotPaid)
	if len(view.Selection) != 0 {
		t.Fatalf("selection should clear on bucket change, got %v", view.Selection.IDs())
	}
	if view.ActiveBucket != BucketNotPaid {
		t.Fatalf("active bucket = %v, want %v", view.ActiveBucket, BucketNotPaid)
	}
}

func TestViewState_SameBucketKeepsSelection(t *testing.T) {
	view := NewViewState(BucketReadyToSubmit)
	view.Selection.Toggle(1)

	view.SetBucket(BucketReadyToSubmit)
	if !view.Selection.Has(1) {
		t.Fatal("re-setting the same bucket should not clear the selection")
	}
}

func TestViewState_SearchTermKeepsSelection(t *testing.T) {
	view := NewViewState(BucketReadyToSubmit)
	view.Selection.Toggle(1)

	view.SetSearchTerm("fruitvale")
	if !view.Selection.Has(1) {
		t.Fatal("search term change should not clear the selection")
	}
}
