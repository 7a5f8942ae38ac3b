package modkit

import (
	"context"
	"testing"

	"healthdash/internal/platform/store"
	kit "healthdash/internal/platform/testkit"
)

func TestBuild_Defaults(t *testing.T) {
	t.Parallel()

	b := Build()
	if b.Name != "" || b.Prefix != "" || b.Ports != nil {
		t.Fatalf("unexpected defaults: %+v", b)
	}
}

func TestBuild_OptionsOverride(t *testing.T) {
	t.Parallel()

	type ports struct{ N int }
	b := Build(
		WithName("checkin"),
		WithPrefix("checkin/"),
		WithPorts(ports{N: 3}),
		WithName("checkin-v2"),
	)
	if b.Name != "checkin-v2" || b.Prefix != "/checkin" {
		t.Fatalf("name/prefix = %q %q", b.Name, b.Prefix)
	}
	if p, ok := b.Ports.(ports); !ok || p.N != 3 {
		t.Fatalf("ports = %#v", b.Ports)
	}
	kit.MustPanic(t, func() { Build(WithPrefix(" / ")) })
}

type pingTx struct{ store.TxRunner }

func (pingTx) Ping(context.Context) error { return nil }

func TestDeps_Pingers(t *testing.T) {
	t.Parallel()

	if got := (Deps{}).Pingers(); len(got) != 0 {
		t.Fatalf("zero deps pingers = %v", got)
	}
	d := Deps{PG: pingTx{}, Admin: pingTx{}}
	got := d.Pingers()
	if _, ok := got["pg"]; !ok || len(got) != 2 {
		t.Fatalf("pingers = %v", got)
	}
}
