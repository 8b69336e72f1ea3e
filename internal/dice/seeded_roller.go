package dice

import (
	"crypto/hmac"
	"crypto/sha256"
	"fmt"
	"math"
	"sync"
)

// SeededRoller derives faces from an HMAC-SHA256 byte stream keyed by the server
// seed, so a whole game can be replayed from (serverSeed, clientSeed, nonce).
type SeededRoller struct {
	mu         sync.Mutex
	serverSeed string
	clientSeed string
	nonce      uint64
	round      uint64
	pos        int
	buffer     [32]byte
}

// NewSeededRoller creates a deterministic roller positioned at cursor 0
func NewSeededRoller(serverSeed, clientSeed string, nonce uint64) *SeededRoller {
	r := &SeededRoller{
		serverSeed: serverSeed,
		clientSeed: clientSeed,
		nonce:      nonce,
	}
	r.generateRound()
	return r
}

// RollFace implements Roller.RollFace using 4 bytes of the stream per face
func (r *SeededRoller) RollFace(sides int) (int, error) {
	if sides < 1 {
		return 0, ErrInvalidSides
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	var b [4]byte
	for i := range b {
		b[i] = r.next()
	}
	face := int(math.Floor(bytesToFloat(b)*float64(sides))) + 1
	if face > sides {
		face = sides
	}
	return face, nil
}

func (r *SeededRoller) next() byte {
	if r.pos >= len(r.buffer) {
		r.round++
		r.pos = 0
		r.generateRound()
	}

	b := r.buffer[r.pos]
	r.pos++
	return b
}

func (r *SeededRoller) generateRound() {
	h := hmac.New(sha256.New, []byte(r.serverSeed))
	message := fmt.Sprintf("%s:%d:%d", r.clientSeed, r.nonce, r.round)
	h.Write([]byte(message))
	copy(r.buffer[:], h.Sum(nil))
}

// bytesToFloat maps 4 bytes to [0, 1)
func bytesToFloat(bytes [4]byte) float64 {
	result := 0.0
	for i, b := range bytes {
		divider := math.Pow(256, float64(i+1))
		result += float64(b) / divider
	}
	return result
}
