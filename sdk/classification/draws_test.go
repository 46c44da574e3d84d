package classification

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBestDraw(t *testing.T) {
	tests := []struct {
		hole, board string
		want        Draw
	}{
		{"AhQh", "Kh 9h 4c", FlushDraw},
		{"Ah2c", "Kh 9h 4h", FlushDraw},
		{"AsQs", "Jh 9h 4h", Overcards},
		{"JdTd", "Qh 9s 4c", OpenEnded},
		{"8d7c", "Qh 6s 5c", OpenEnded},
		{"JdTc", "Ah Qs 4c", Gutshot},
		{"5d4c", "Ah 3s Kc", Gutshot},
		{"AdQd", "8h 7s 4c", Overcards},
		{"3d2d", "Kh 9s 8c", NoDraw},
		{"Ad2c", "9h 8s 7c 6d", NoDraw},
		{"Td2c", "9h 8s 7c 6d", NoDraw},
		{"JdTc", "9h 8s 2c", OpenEnded},
	}
	for _, tt := range tests {
		t.Run(tt.hole+" "+tt.board, func(t *testing.T) {
			got := BestDraw(mustHand(t, tt.hole), mustHand(t, tt.board))
			assert.Equal(t, tt.want, got, "got %s", got)
		})
	}
}
