package gpu

import (
	"strings"
	"testing"

	"github.com/gogpu/naga"
)

// spirvMagic is the SPIR-V magic number in word 0.
const spirvMagic = 0x07230203

func compileOrSkip(t *testing.T, name, source string) []uint32 {
	t.Helper()
	if source == "" {
		t.Fatalf("%s shader source is empty", name)
	}
	words, err := compileToSPIRV(source)
	if err != nil {
		errStr := err.Error()
		if strings.Contains(errStr, "runtime-sized arrays not yet implemented") {
			t.Skip("Skipping: naga doesn't yet support runtime-sized arrays (needed for storage buffers)")
		}
		if strings.Contains(errStr, "not yet implemented") || strings.Contains(errStr, "not supported") {
			t.Skipf("Skipping: naga feature not yet implemented: %v", err)
		}
		t.Fatalf("failed to compile %s shader: %v", name, err)
	}
	return words
}

func TestFillShaderCompilation(t *testing.T) {
	words := compileOrSkip(t, "fill", fillShaderSource)
	if len(words) == 0 {
		t.Fatal("SPIR-V output is empty")
	}
	if words[0] != spirvMagic {
		t.Errorf("invalid SPIR-V magic: 0x%08X, want 0x%08X", words[0], spirvMagic)
	}
}

func TestBlitShaderCompilation(t *testing.T) {
	words := compileOrSkip(t, "blit", blitShaderSource)
	if len(words) == 0 {
		t.Fatal("SPIR-V output is empty")
	}
	if words[0] != spirvMagic {
		t.Errorf("invalid SPIR-V magic: 0x%08X, want 0x%08X", words[0], spirvMagic)
	}
}

// The SPIR-V word conversion must assemble little-endian bytes.
func TestSPIRVWordOrder(t *testing.T) {
	raw, err := naga.Compile(fillShaderSource)
	if err != nil {
		t.Skipf("Skipping: naga compile unavailable: %v", err)
	}
	if len(raw) < 4 {
		t.Fatal("SPIR-V too short")
	}
	words, err := compileToSPIRV(fillShaderSource)
	if err != nil {
		t.Fatalf("compileToSPIRV: %v", err)
	}
	want := uint32(raw[0]) | uint32(raw[1])<<8 | uint32(raw[2])<<16 | uint32(raw[3])<<24
	if words[0] != want {
		t.Errorf("word 0 = 0x%08X, want 0x%08X", words[0], want)
	}
}
