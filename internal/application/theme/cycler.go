package theme

import (
	"log/slog"
	"sync"
	"time"

	ports "post-sync-client/internal/domain/ports/output"
)

type Color string

const (
	Orange Color = "orange"
	Purple Color = "purple"
	Blue   Color = "blue"
	Green  Color = "green"
)

var palette = []Color{Orange, Purple, Blue, Green}

func (c Color) Next() Color {
	for i, p := range palette {
		if p == c {
			return palette[(i+1)%len(palette)]
		}
	}
	return palette[0]
}

// Cycler rotates the palette on a repeating timer while it is running.
type Cycler struct {
	log      ports.Logger
	interval time.Duration

	mu       sync.Mutex
	current  Color
	running  bool
	stop     chan struct{}
	done     chan struct{}
	onChange func(Color)
}

func NewCycler(interval time.Duration, log ports.Logger) *Cycler {
	if interval <= 0 {
		interval = 3 * time.Second
	}
	return &Cycler{
		log:      log,
		interval: interval,
		current:  Orange,
	}
}

// SetOnChange registers fn to be called after every rotation and start/stop transition.
func (c *Cycler) SetOnChange(fn func(Color)) {
	c.mu.Lock()
	c.onChange = fn
	c.mu.Unlock()
}

func (c *Cycler) Current() Color {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

func (c *Cycler) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.running
}

// Advance rotates to the next color immediately.
func (c *Cycler) Advance() Color {
	c.mu.Lock()
	c.current = c.current.Next()
	next, fn := c.current, c.onChange
	c.mu.Unlock()

	if fn != nil {
		fn(next)
	}
	return next
}

// Start reports false if the cycler was already running.
func (c *Cycler) Start() bool {
	c.mu.Lock()
	if c.running {
		c.mu.Unlock()
		return false
	}
	after := c.startLocked()
	c.mu.Unlock()

	after()
	return true
}

// Stop is safe to call any number of times.
func (c *Cycler) Stop() {
	c.mu.Lock()
	if !c.running {
		c.mu.Unlock()
		return
	}
	after := c.stopLocked()
	c.mu.Unlock()

	after()
}

// Toggle flips the running state and returns the new one.
func (c *Cycler) Toggle() bool {
	c.mu.Lock()
	var after func()
	if c.running {
		after = c.stopLocked()
	} else {
		after = c.startLocked()
	}
	running := c.running
	c.mu.Unlock()

	after()
	return running
}

// startLocked must hold mu. The returned func runs after unlocking.
func (c *Cycler) startLocked() func() {
	c.running = true
	c.stop = make(chan struct{})
	c.done = make(chan struct{})
	stop, done, fn, current := c.stop, c.done, c.onChange, c.current

	go c.loop(stop, done)

	return func() {
		c.log.Debug("Theme cycling started", slog.Duration("interval", c.interval))
		if fn != nil {
			fn(current)
		}
	}
}

// stopLocked must hold mu. The returned func waits for the loop to exit.
func (c *Cycler) stopLocked() func() {
	c.running = false
	stop, done, fn, current := c.stop, c.done, c.onChange, c.current
	c.stop, c.done = nil, nil
	close(stop)

	return func() {
		<-done
		c.log.Debug("Theme cycling stopped", slog.String("color", string(current)))
		if fn != nil {
			fn(current)
		}
	}
}

func (c *Cycler) loop(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			c.Advance()
		}
	}
}
