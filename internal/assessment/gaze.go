package assessment

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/AarazooSingh1506/autism-detction-system/internal/models"
)

// SignalSource produces one gaze capture per assessment flow.
type SignalSource interface {
	Generate() models.GazeSignal
}

// SimulatedSource draws a synthetic gaze pattern from fixed ranges. It
// stands in for real eye-tracking hardware and carries no clinical signal;
// swap in a real SignalSource before drawing conclusions from the output.
type SimulatedSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSimulatedSource returns a source seeded from the current time.
func NewSimulatedSource() *SimulatedSource {
	return NewSeededSource(time.Now().UnixNano())
}

// NewSeededSource returns a source with a fixed seed, for reproducible runs.
func NewSeededSource(seed int64) *SimulatedSource {
	return &SimulatedSource{rng: rand.New(rand.NewSource(seed))}
}

// Generate draws a fresh gaze signal. Safe for concurrent use.
func (s *SimulatedSource) Generate() models.GazeSignal {
	s.mu.Lock()
	defer s.mu.Unlock()

	return models.GazeSignal{
		Fixations:     s.intBetween(5, 20),
		Saccades:      s.intBetween(10, 30),
		PupilDilation: math.Round((2.0+s.rng.Float64()*3.0)*10) / 10,
		Attention: models.AttentionAreas{
			Eyes:    s.intBetween(20, 80),
			Mouth:   s.intBetween(10, 60),
			Objects: s.intBetween(5, 40),
		},
	}
}

// intBetween returns a random int in [lo, hi].
func (s *SimulatedSource) intBetween(lo, hi int) int {
	return lo + s.rng.Intn(hi-lo+1)
}
