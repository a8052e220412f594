package errors

import "testing"

func TestTrace(t *testing.T) {
	if e := Trace(nil); e != nil {
		t.Error("Trace should return nil on a nil error")
	}
	e := New("boom")
	te := Trace(e)
	if Cause(te) != e {
		t.Error("Cause should return the original error")
	}
	if locs := Locations(te); len(locs) != 1 {
		t.Errorf("Expected 1 location, got %+v", locs)
	}
	te = Trace(te)
	if locs := Locations(te); len(locs) != 2 {
		t.Errorf("Expected 2 locations, got %+v", locs)
	}
	if Cause(te) != e {
		t.Error("Cause should survive repeated wrapping")
	}
}

func TestCausePassthrough(t *testing.T) {
	e := New("plain")
	if Cause(e) != e {
		t.Error("Cause of an unwrapped error should be the error itself")
	}
}

func TestAnnotate(t *testing.T) {
	if e := Annotate(nil, "XXX"); e != nil {
		t.Error("Annotate should return nil on a nil error")
	}
	if a := Annotations(nil); a != nil {
		t.Error("Annotations should return nil on a nil error")
	}
	e := New("test")
	if a := Annotations(e); a != nil {
		t.Error("Expected no annotations for an unwrapped error")
	}
	e = Annotate(e, "foo")
	e = Annotatef(e, "bar%d", 2)
	if a := Annotations(e); len(a) != 2 || a[0] != "foo" || a[1] != "bar2" {
		t.Errorf("Expected ['foo', 'bar2'] got %+v", a)
	}
	if es := e.Error(); es != "test (foo, bar2)" {
		t.Errorf("Expected 'test (foo, bar2)', got '%s'", es)
	}
}
