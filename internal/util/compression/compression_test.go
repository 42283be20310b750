package compression

import (
	"bytes"
	"testing"
)

func TestForPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Compressor
		ok      bool
		trimmed string
	}{
		{"seed.json.zst", ZstdCompressor{}, true, "seed.json"},
		{"seed.json.ZSTD", ZstdCompressor{}, true, "seed.json"},
		{"seed.json.gz", GzipCompressor{}, true, "seed.json"},
		{"seed.json", nil, false, "seed.json"},
		{"seed.db", nil, false, "seed.db"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, ok := ForPath(tt.path)
			if ok != tt.ok || got != tt.want {
				t.Errorf("ForPath(%q) = %T, %v; want %T, %v", tt.path, got, ok, tt.want, tt.ok)
			}
			if trimmed := TrimExt(tt.path); trimmed != tt.trimmed {
				t.Errorf("TrimExt(%q) = %q, want %q", tt.path, trimmed, tt.trimmed)
			}
		})
	}
}

func TestCompressors(t *testing.T) {
	data := bytes.Repeat([]byte(`{"users":[{"id":1,"name":"Alice"}]}`), 20)

	for name, c := range map[string]Compressor{"zstd": ZstdCompressor{}, "gzip": GzipCompressor{}} {
		t.Run(name, func(t *testing.T) {
			compressed, err := c.Compress(data)
			if err != nil {
				t.Fatalf("Compress failed: %v", err)
			}
			if len(compressed) >= len(data) {
				t.Errorf("Expected repetitive data to shrink, got %d >= %d", len(compressed), len(data))
			}

			decompressed, err := c.Decompress(compressed)
			if err != nil {
				t.Fatalf("Decompress failed: %v", err)
			}
			if !bytes.Equal(decompressed, data) {
				t.Error("Decompressed data does not match original")
			}
		})
	}

	t.Run("Garbage input", func(t *testing.T) {
		if _, err := (GzipCompressor{}).Decompress([]byte("not gzip")); err == nil {
			t.Error("Expected gzip error on garbage input")
		}
		if _, err := (ZstdCompressor{}).Decompress([]byte("not zstd")); err == nil {
			t.Error("Expected zstd error on garbage input")
		}
	})
}
