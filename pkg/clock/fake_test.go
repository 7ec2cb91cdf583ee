package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFake_AdvanceFiresDueTimersInOrder(t *testing.T) {
	c := NewFake(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))

	var fired []string
	c.AfterFunc(2*time.Second, func() { fired = append(fired, "second") })
	c.AfterFunc(1*time.Second, func() { fired = append(fired, "first") })
	c.AfterFunc(5*time.Second, func() { fired = append(fired, "late") })

	c.Advance(3 * time.Second)

	assert.Equal(t, []string{"first", "second"}, fired)
	assert.Equal(t, 1, c.Pending())
}

func TestFake_StoppedTimerDoesNotFire(t *testing.T) {
	c := NewFake(time.Now())

	fired := false
	timer := c.AfterFunc(time.Second, func() { fired = true })

	assert.True(t, timer.Stop())
	assert.False(t, timer.Stop())

	c.Advance(time.Minute)
	assert.False(t, fired)
}
