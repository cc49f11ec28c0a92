package echoai

import (
	"fmt"
	"testing"
)

func TestInMemoryStore_KVGetSet(t *testing.T) {
	s := NewInMemoryStore()
	s.Set("ns", "k", "v")
	v, _ := s.Get("ns", "k")
	if v != "v" {
		t.Fatalf("expected v, got %s", v)
	}
	v2, _ := s.Get("ns", "missing")
	if v2 != "" {
		t.Fatal("expected empty string for missing key")
	}
}

func TestInMemoryStore_KVDelete(t *testing.T) {
	s := NewInMemoryStore()
	s.Set("ns", "k", "v")
	s.Delete("ns", "k")
	v, _ := s.Get("ns", "k")
	if v != "" {
		t.Fatal("expected empty after delete")
	}
}

func TestInMemoryStore_ListAppendGet(t *testing.T) {
	s := NewInMemoryStore()
	s.Append("ns", "l", "a")
	s.Append("ns", "l", "b")
	items, _ := s.GetList("ns", "l", 0)
	if len(items) != 2 || items[0] != "a" || items[1] != "b" {
		t.Fatalf("expected [a b], got %v", items)
	}
}

func TestInMemoryStore_GetListLimitReturnsTail(t *testing.T) {
	s := NewInMemoryStore()
	for i := 0; i < 5; i++ {
		s.Append("ns", "l", fmt.Sprintf("item-%d", i))
	}
	items, _ := s.GetList("ns", "l", 2)
	if len(items) != 2 || items[0] != "item-3" || items[1] != "item-4" {
		t.Fatalf("expected last two items, got %v", items)
	}
}

func TestInMemoryStore_ListTrim(t *testing.T) {
	s := NewInMemoryStore()
	for i := 0; i < 10; i++ {
		s.Append("ns", "l", fmt.Sprintf("%d", i))
	}
	s.TrimList("ns", "l", 3)
	items, _ := s.GetList("ns", "l", 0)
	if len(items) != 3 || items[0] != "7" {
		t.Fatalf("expected newest 3 items, got %v", items)
	}
	n, _ := s.ListLength("ns", "l")
	if n != 3 {
		t.Fatalf("expected length 3, got %d", n)
	}
}

func TestInMemoryStore_NamespaceIsolation(t *testing.T) {
	s := NewInMemoryStore()
	s.Set("echoai:u1", "k", "v1")
	s.Set("echoai:u2", "k", "v2")
	v1, _ := s.Get("echoai:u1", "k")
	v2, _ := s.Get("echoai:u2", "k")
	if v1 != "v1" || v2 != "v2" {
		t.Fatal("namespace isolation failed")
	}
}
