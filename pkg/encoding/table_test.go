package encoding

import "testing"

func TestLoadKnownEncodings(t *testing.T) {
	for _, name := range []string{CL100kBase, O200kBase} {
		tbl, err := Load(name)
		if err != nil {
			t.Fatalf("Load(%q) error: %v", name, err)
		}
		if tbl.Name() != name {
			t.Errorf("Name() = %q, want %q", tbl.Name(), name)
		}
		if tbl.VocabSize() == 0 {
			t.Errorf("%s: VocabSize() = 0", name)
		}
	}
}

func TestLoadUnknownEncoding(t *testing.T) {
	_, err := Load("not-a-real-encoding")
	if err == nil {
		t.Fatal("expected error for unknown encoding")
	}
	var ue *ErrUnknownEncoding
	if _, ok := err.(*ErrUnknownEncoding); !ok {
		t.Errorf("error = %T %v, want *ErrUnknownEncoding", err, err)
	}
	_ = ue
}

func TestTableInvariants(t *testing.T) {
	tbl, err := Load(CL100kBase)
	if err != nil {
		t.Fatal(err)
	}

	// Every byte value must resolve to some rank, either via the ASCII
	// string table or the binary table.
	for b := 0; b < 256; b++ {
		_, okStr := tbl.RankOfString(string(rune(b)))
		_, okBin := tbl.RankOfBytes([]byte{byte(b)})
		if !okStr && !okBin {
			t.Errorf("byte %d has no rank in either table", b)
		}
	}

	// binaryRanks must be strictly sorted with no duplicates; verified
	// indirectly by checking every first-byte bucket is itself sorted.
	for b := 0; b < 256; b++ {
		bucket := tbl.firstByteIndex[b]
		for i := 1; i < len(bucket); i++ {
			if string(bucket[i-1].Bytes) >= string(bucket[i].Bytes) {
				t.Errorf("firstByteIndex[%d] not strictly sorted at %d", b, i)
			}
		}
	}
}

func TestDecodeRoundTripsKnownRanks(t *testing.T) {
	tbl, err := Load(CL100kBase)
	if err != nil {
		t.Fatal(err)
	}
	rank, ok := tbl.RankOfString("the")
	if !ok {
		t.Fatal(`expected "the" to be a known piece`)
	}
	out, ok := tbl.Decode(rank, nil)
	if !ok || string(out) != "the" {
		t.Errorf("Decode(%d) = %q, %v, want \"the\", true", rank, out, ok)
	}
}

func TestDecodeUnknownRank(t *testing.T) {
	tbl, err := Load(CL100kBase)
	if err != nil {
		t.Fatal(err)
	}
	_, ok := tbl.Decode(1<<30, nil)
	if ok {
		t.Error("expected unknown rank to report ok=false")
	}
}
