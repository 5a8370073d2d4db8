package property

import "testing"

func BenchmarkBoolean_Create(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Create(true); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkBoolean_AsBool(b *testing.B) {
	pv := FromRawBytes([]byte{byte(TagBool), 0xFF})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := pv.AsBool(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkBoolean_Compare(b *testing.B) {
	t := FromRawBytes([]byte{byte(TagBool), 0xFF})
	f := FromRawBytes([]byte{byte(TagBool), 0x00})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := t.Compare(f); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkInt32VsInt64_Compare(b *testing.B) {
	x, _ := Create(int32(5))
	y, _ := Create(int64(5))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := x.Compare(y); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkList_RoundTrip(b *testing.B) {
	v := []any{int32(1), "two", 3.0, map[string]any{"four": true}}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		pv, err := Create(v)
		if err != nil {
			b.Fatal(err)
		}
		if _, err := pv.Native(); err != nil {
			b.Fatal(err)
		}
	}
}
