package model

import (
	"reflect"
	"testing"
)

// register connects the given conn ids in order, so conn 0 becomes User0,
// conn 1 becomes User1, and so on.
func register(t *testing.T, m *Model, ids ...int64) {
	t.Helper()
	for _, id := range ids {
		m.RegisterUser(id)
	}
}

func assertBroadcast(t *testing.T, label string, got, want Broadcast) {
	t.Helper()
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("%s: got %+v, want %+v", label, got, want)
	}
}

func assertStrings(t *testing.T, label string, got, want []string) {
	t.Helper()
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("%s: got %v, want %v", label, got, want)
	}
}

func assertError(t *testing.T, label string, got Broadcast, code ReplyCode) {
	t.Helper()
	if got.Kind != BroadcastError {
		t.Fatalf("%s: got kind %v, want error broadcast", label, got.Kind)
	}
	if got.Code != code {
		t.Fatalf("%s: got code %v, want %v", label, got.Code, code)
	}
	if len(got.Recipients) != 1 || got.Recipients[0] != got.Command.Sender {
		t.Fatalf("%s: error must target the sender alone, got %v", label, got.Recipients)
	}
}
