package log

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

func TestDiscard(t *testing.T) {
	l := New(Discard, Scope{"a": 1})

	for level := range Levels() {
		if err := l.Log(level, "dropped"); err != nil {
			t.Errorf("expected nil error for %s, got %v", level, err)
		}
	}
}

func TestTee_DeliversToAll(t *testing.T) {
	first, second := &recorder{}, &recorder{}

	l := New(Tee(first.factory, nil, second.factory), Scope{"a": 1})
	_ = l.Info("both", Meta{"m": true})

	for i, rec := range []*recorder{first, second} {
		if !reflect.DeepEqual(rec.scopes, []Scope{{"a": 1}}) {
			t.Errorf("backend %d: expected scope binding, got %v", i, rec.scopes)
		}

		expected := []call{{LevelInfo, "both", Meta{"m": true}}}
		if !reflect.DeepEqual(rec.calls, expected) {
			t.Errorf("backend %d: expected %v, got %v", i, expected, rec.calls)
		}
	}
}

func TestTee_JoinsErrors(t *testing.T) {
	errA, errB := errors.New("a"), errors.New("b")
	first, second, third := &recorder{err: errA}, &recorder{}, &recorder{err: errB}

	err := New(Tee(first.factory, second.factory, third.factory), nil).Warn("x")

	if !errors.Is(err, errA) || !errors.Is(err, errB) {
		t.Errorf("expected joined errors, got %v", err)
	}

	if len(second.calls) != 1 || len(third.calls) != 1 {
		t.Error("expected every backend to be called despite failures")
	}
}

func TestTee_BindsIndependentScopes(t *testing.T) {
	var bound []Scope

	mutating := func(scope Scope) Func {
		scope["mutated"] = true
		bound = append(bound, scope)

		return discard
	}

	New(Tee(mutating, func(scope Scope) Func {
		bound = append(bound, scope)

		return discard
	}), Scope{"a": 1})

	if _, ok := bound[1]["mutated"]; ok {
		t.Error("expected each backend to receive its own scope copy")
	}
}

func TestContext_RoundTrip(t *testing.T) {
	rec := &recorder{}
	l := New(rec.factory, Scope{"requestId": "r1"})

	ctx := WithContext(context.Background(), l)

	got := FromContext(ctx)
	if !reflect.DeepEqual(got.CurrentScope(), Scope{"requestId": "r1"}) {
		t.Errorf("expected carried logger, got scope %v", got.CurrentScope())
	}

	_ = got.Info("from context")

	if len(rec.calls) != 1 {
		t.Errorf("expected call through carried logger, got %d", len(rec.calls))
	}
}

func TestContext_FallsBackToDefault(t *testing.T) {
	got := FromContext(context.Background())

	if len(got.CurrentScope()) != 0 {
		t.Errorf("expected default logger, got scope %v", got.CurrentScope())
	}
}
