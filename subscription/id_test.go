package subscription

import "testing"

func TestIDEquality(t *testing.T) {
	if Singleton("a") != Singleton("a") {
		t.Fatal("same-tag singletons should be equal")
	}
	if Singleton("a") == Singleton("b") {
		t.Fatal("different-tag singletons should not be equal")
	}
	if WithInt("timer", 1) != WithInt("timer", 1) {
		t.Fatal("same tag+int should be equal")
	}
	if WithInt("timer", 1) == WithInt("timer", 2) {
		t.Fatal("different int discriminants should not be equal")
	}
	if WithString("watch", "/a") == WithString("watch", "/b") {
		t.Fatal("different string keys should not hash equal")
	}
	if WithString("watch", "/a") != WithString("watch", "/a") {
		t.Fatal("same string key should hash equal")
	}
}

func TestFreshNeverCollidesWithItself(t *testing.T) {
	a := Fresh("ephemeral")
	b := Fresh("ephemeral")
	if a == b {
		t.Fatal("two Fresh ids should not collide")
	}
}
