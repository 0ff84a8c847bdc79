package conversation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFingerprintsShape(t *testing.T) {
	fps := Fingerprints("Beta, the OTP is not coming. Network problem!")
	assert.Len(t, fps, 3)
	assert.True(t, strings.HasPrefix(fps[0], "head:"))
	assert.True(t, strings.HasPrefix(fps[1], "tail:"))
	assert.True(t, strings.HasPrefix(fps[2], "hash:"))
}

func TestFingerprintsNormalization(t *testing.T) {
	a := Fingerprints("Beta, the OTP is NOT coming!")
	b := Fingerprints("beta the otp is not coming")
	assert.Equal(t, a, b)
}

func TestFingerprintsEmpty(t *testing.T) {
	assert.Nil(t, Fingerprints("!!! ..."))
}

func TestCollidesWithSameOpening(t *testing.T) {
	window := RememberFingerprints(nil, "One minute beta, I am finding my glasses right now okay", 8)

	// Same first eight words, different ending.
	assert.True(t, CollidesWith(window, "One minute beta, I am finding my glasses in the kitchen"))
	assert.False(t, CollidesWith(window, "The phone is hanging again and again today"))
}

func TestRememberFingerprintsTrimsWindow(t *testing.T) {
	var window []string
	replies := []string{
		"Beta the phone screen has gone fully dark now",
		"One minute, my spectacles are lost somewhere in kitchen",
		"Arre the neighbour is knocking, wait I will come",
		"My knee is paining, let me sit down first",
	}
	for _, reply := range replies {
		window = RememberFingerprints(window, reply, 2)
	}

	assert.Len(t, window, 6)
	assert.False(t, CollidesWith(window, replies[0]))
	assert.True(t, CollidesWith(window, replies[3]))
}
