package generator

import (
	"context"
	"sync"
	"testing"

	"github.com/nguyentantai21042004/process-flow/internal/logger"
)

func TestGenerateNoKeys(t *testing.T) {
	g := New(nil, "", logger.New("error"))

	if _, err := g.Generate(context.Background(), "prompt"); err == nil {
		t.Error("Generate() = nil error, want error without API keys")
	}
}

func TestRotateKeyWraps(t *testing.T) {
	g := New([]string{"a", "b", "c"}, "", logger.New("error")).(*implGenerator)

	want := []int{1, 2, 0, 1}
	for i, w := range want {
		g.rotateKey()
		if _, got := g.activeKey(); got != w {
			t.Errorf("rotation %d: currentKey = %d, want %d", i+1, got, w)
		}
	}
}

func TestConcurrentRotation(t *testing.T) {
	// One generator serves every in-flight extraction, so rotation and key
	// lookup race against each other across handler goroutines.
	g := New([]string{"a", "b", "c"}, "", logger.New("error")).(*implGenerator)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			g.rotateKey()
			g.activeKey()
		}()
	}
	wg.Wait()

	if _, idx := g.activeKey(); idx < 0 || idx >= len(g.apiKeys) {
		t.Errorf("currentKey = %d, want in [0,%d)", idx, len(g.apiKeys))
	}
}
