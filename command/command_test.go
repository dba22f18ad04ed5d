package command

import (
	"context"
	"errors"
	"testing"
)

func TestBatchCollapsesEmptyToNone(t *testing.T) {
	if !Batch().IsNone() {
		t.Fatal("expected empty Batch to collapse to None")
	}
	if !Sequence().IsNone() {
		t.Fatal("expected empty Sequence to collapse to None")
	}
}

func TestBatchUnwrapsSingleton(t *testing.T) {
	inner := Message("a")
	got := Batch(inner)
	m, ok := got.AsMessage()
	if !ok || m != "a" {
		t.Fatalf("expected Batch([c]) to unwrap to c, got %#v", got)
	}

	got = Sequence(inner)
	m, ok = got.AsMessage()
	if !ok || m != "a" {
		t.Fatalf("expected Sequence([c]) to unwrap to c, got %#v", got)
	}
}

func TestBatchDropsNoneChildren(t *testing.T) {
	got := Batch(None(), Message("a"), None())
	m, ok := got.AsMessage()
	if !ok || m != "a" {
		t.Fatalf("expected None children dropped, got %#v", got)
	}
}

func TestBatchOrdering(t *testing.T) {
	got := Batch(Message("a"), Message("b"), Message("c"))
	children, ok := got.AsBatch()
	if !ok || len(children) != 3 {
		t.Fatalf("expected 3 batch children, got %#v", got)
	}
	for i, want := range []string{"a", "b", "c"} {
		m, ok := children[i].AsMessage()
		if !ok || m != want {
			t.Fatalf("child %d: want %q got %#v", i, want, m)
		}
	}
}

func TestMapTransparency(t *testing.T) {
	f := func(m Msg) Msg { return m.(string) + "!" }

	term := Terminal(DirEnterAltScreen())
	if got := term.Map(f); got.kind != term.kind {
		t.Fatalf("Terminal.Map changed kind: %#v", got)
	}

	q := Quit()
	if got := q.Map(f); !got.IsQuit() {
		t.Fatal("Quit.Map must stay Quit")
	}

	n := None()
	if got := n.Map(f); !got.IsNone() {
		t.Fatal("None.Map must stay None")
	}
}

func TestMapAppliesToMessage(t *testing.T) {
	f := func(m Msg) Msg { return m.(string) + "!" }
	got := Message("a").Map(f)
	m, ok := got.AsMessage()
	if !ok || m != "a!" {
		t.Fatalf("expected mapped message, got %#v", m)
	}
}

func TestMapComposition(t *testing.T) {
	f := func(m Msg) Msg { return m.(int) + 1 }
	g := func(m Msg) Msg { return m.(int) * 2 }
	compose := func(m Msg) Msg { return g(f(m)) }

	c := Batch(Message(1), Message(2))

	left := c.Map(f).Map(g)
	right := c.Map(compose)

	lc, _ := left.AsBatch()
	rc, _ := right.AsBatch()
	if len(lc) != len(rc) {
		t.Fatalf("batch length mismatch")
	}
	for i := range lc {
		lm, _ := lc[i].AsMessage()
		rm, _ := rc[i].AsMessage()
		if lm != rm {
			t.Fatalf("functor composition violated at %d: %v != %v", i, lm, rm)
		}
	}
}

func TestMapIdentity(t *testing.T) {
	identity := func(m Msg) Msg { return m }
	c := Batch(Message("a"), Message("b"))
	got := c.Map(identity)

	orig, _ := c.AsBatch()
	mapped, _ := got.AsBatch()
	for i := range orig {
		om, _ := orig[i].AsMessage()
		mm, _ := mapped[i].AsMessage()
		if om != mm {
			t.Fatalf("Map(identity) changed message %d: %v != %v", i, om, mm)
		}
	}
}

func TestMapFuture(t *testing.T) {
	c := Future(func(ctx context.Context) Msg { return 1 })
	mapped := c.Map(func(m Msg) Msg { return m.(int) + 1 })

	var got Msg
	mapped.Visit(Visitor{Future: func(fn func(context.Context) Msg) {
		got = fn(context.Background())
	}})
	if got != 2 {
		t.Fatalf("expected mapped future result 2, got %v", got)
	}
}

func TestMapStream(t *testing.T) {
	c := Stream(func(ctx context.Context, yield func(Msg) bool) {
		yield(1)
		yield(2)
	})
	mapped := c.Map(func(m Msg) Msg { return m.(int) * 10 })

	var got []Msg
	mapped.Visit(Visitor{Stream: func(fn StreamFunc) {
		fn(context.Background(), func(m Msg) bool {
			got = append(got, m)
			return true
		})
	}})
	if len(got) != 2 || got[0] != 10 || got[1] != 20 {
		t.Fatalf("unexpected mapped stream output: %v", got)
	}
}

func TestMapExec(t *testing.T) {
	c := Exec(ExecSpec{Path: "true"}, func(r ExecResult) Msg { return r.ExitCode })
	mapped := c.Map(func(m Msg) Msg { return m.(int) + 100 })

	var got Msg
	mapped.Visit(Visitor{Exec: func(spec ExecSpec, onExit func(ExecResult) Msg) {
		got = onExit(ExecResult{ExitCode: 1})
	}})
	if got != 101 {
		t.Fatalf("expected mapped exec continuation result 101, got %v", got)
	}
}

func TestQuitWithError(t *testing.T) {
	sentinel := errors.New("boom")
	c := QuitWithError(sentinel)
	if !c.IsQuit() {
		t.Fatal("expected QuitWithError to report IsQuit")
	}
	if c.QuitErr() != sentinel {
		t.Fatalf("expected QuitErr to round-trip, got %v", c.QuitErr())
	}
}

func TestVisitExhaustiveness(t *testing.T) {
	cases := []Command{
		None(), Message("m"), Quit(), QuitWithError(errors.New("x")),
		Future(func(context.Context) Msg { return nil }),
		Stream(func(context.Context, func(Msg) bool) {}),
		Batch(Message("a"), Message("b")),
		Sequence(Message("a"), Message("b")),
		Terminal(DirClearScreen()),
		Exec(ExecSpec{}, func(ExecResult) Msg { return nil }),
	}
	for _, c := range cases {
		hit := false
		c.Visit(Visitor{
			None:     func() { hit = true },
			Message:  func(Msg) { hit = true },
			Quit:     func(error) { hit = true },
			Future:   func(func(context.Context) Msg) { hit = true },
			Stream:   func(StreamFunc) { hit = true },
			Batch:    func([]Command) { hit = true },
			Sequence: func([]Command) { hit = true },
			Terminal: func(TerminalDirective) { hit = true },
			Exec:     func(ExecSpec, func(ExecResult) Msg) { hit = true },
		})
		if !hit {
			t.Fatalf("Visit did not dispatch for %#v", c)
		}
	}
}
