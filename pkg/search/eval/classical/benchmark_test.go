package classical_test

import (
	"testing"

	"github.com/zmeadows/feldspar/pkg/chess"
	"github.com/zmeadows/feldspar/pkg/chess/piece"
	"github.com/zmeadows/feldspar/pkg/search/eval/classical"
)

func BenchmarkAccumulate(b *testing.B) {
	pos := chess.NewGame()
	evaluator := classical.EfficientlyUpdatable{Board: &pos.Board}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		evaluator.Accumulate(piece.White)
	}
}
