package server

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"boomgates/internal/game"
)

// World hosts a single game and fans its frames out to the connected clients.
// Every access to the game goes through mu.
type World struct {
	mu      sync.Mutex
	game    *game.Game
	clients map[uint32]*Client
	nextID  uint32
	metrics *Metrics
	now     func() time.Time

	// simTime only advances on running ticks, so pauses do not age gates or pickups
	simTime time.Time

	tickInterval  time.Duration
	enemyInterval time.Duration
	gateInterval  time.Duration
}

// WorldOption configures a World
type WorldOption func(*World)

// WithMetrics records tick and spawn activity on m
func WithMetrics(m *Metrics) WorldOption {
	return func(w *World) { w.metrics = m }
}

// WithClock replaces time.Now as the wall clock. It also sets where simulation time starts.
func WithClock(now func() time.Time) WorldOption {
	return func(w *World) {
		if now != nil {
			w.now = now
		}
	}
}

// WithIntervals overrides the tick and spawn timer periods. Zero keeps the default.
func WithIntervals(tick, enemies, gates time.Duration) WorldOption {
	return func(w *World) {
		if tick > 0 {
			w.tickInterval = tick
		}
		if enemies > 0 {
			w.enemyInterval = enemies
		}
		if gates > 0 {
			w.gateInterval = gates
		}
	}
}

// NewWorld creates a new world around g
func NewWorld(g *game.Game, opts ...WorldOption) *World {
	w := &World{
		game:          g,
		clients:       make(map[uint32]*Client),
		nextID:        1,
		now:           time.Now,
		tickInterval:  game.TickCycle,
		enemyInterval: game.EnemySpawnInterval,
		gateInterval:  game.GateSpawnInterval,
	}
	for _, opt := range opts {
		opt(w)
	}
	w.simTime = w.now()
	return w
}

// Start runs the tick and spawn timers until ctx is cancelled
func (w *World) Start(ctx context.Context) {
	ticker := time.NewTicker(w.tickInterval)
	enemyTicker := time.NewTicker(w.enemyInterval)
	gateTicker := time.NewTicker(w.gateInterval)
	defer ticker.Stop()
	defer enemyTicker.Stop()
	defer gateTicker.Stop()

	log.Printf("Game world started (tick %v, enemies every %v, gates every %v)",
		w.tickInterval, w.enemyInterval, w.gateInterval)
	for {
		select {
		case <-ctx.Done():
			log.Println("Game world stopped")
			return
		case <-ticker.C:
			w.Step()
		case <-enemyTicker.C:
			w.SpawnEnemies()
		case <-gateTicker.C:
			w.SpawnGate()
		}
	}
}

// Step advances the game one tick and broadcasts the resulting frame
func (w *World) Step() game.TickResult {
	w.mu.Lock()
	defer w.mu.Unlock()

	running := w.game.Status() == game.StatusRunning
	if running {
		w.simTime = w.simTime.Add(w.tickInterval)
	}
	start := time.Now()
	res := w.game.Tick(w.simTime)
	if running {
		w.metrics.observeTick(w.game, res, time.Since(start))
	}

	if res.GameOver {
		log.Printf("Game over (%s): score %d, multiplier %d",
			res.Cause, w.game.Score(), w.game.Multiplier())
		w.broadcastEvent(EventGameOver, string(res.Cause))
	}

	w.broadcastSnapshot()
	return res
}

// SpawnEnemies drops the next enemy wave. Nothing spawns unless the game is running.
func (w *World) SpawnEnemies() int {
	w.mu.Lock()
	defer w.mu.Unlock()

	n := w.game.SpawnEnemyWave()
	if n > 0 {
		w.metrics.enemiesSpawned(n)
		w.metrics.observeState(w.game)
		log.Printf("Spawned wave of %d enemies", n)
	}
	return n
}

// SpawnGate places a new gate. It reports false when the game is not running.
func (w *World) SpawnGate() bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	gate := w.game.SpawnGate(w.simTime)
	if gate == nil {
		return false
	}
	w.metrics.gateSpawned()
	w.metrics.observeState(w.game)
	return true
}

// AddClient registers a client, assigns its ID and sends the playfield constants
func (w *World) AddClient(client *Client) {
	w.mu.Lock()
	defer w.mu.Unlock()

	client.ID = w.nextID
	w.nextID++
	w.clients[client.ID] = client
	w.metrics.setClients(len(w.clients))

	client.sendConstants(ConstantsMsg{Constants: game.Constants()})

	log.Printf("Client %d connected", client.ID)
}

// RemoveClient removes a client and closes its send channel
func (w *World) RemoveClient(clientID uint32) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if client, exists := w.clients[clientID]; exists {
		close(client.Send)
		delete(w.clients, clientID)
		w.metrics.setClients(len(w.clients))
		log.Printf("Client %d disconnected", clientID)
	}
}

// HandleInput applies one client frame to the game
func (w *World) HandleInput(clientID uint32, input InputMsg) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if client, exists := w.clients[clientID]; exists {
		client.LastSeen = w.now()
	}

	switch input.Type {
	case MsgTypeKeyDown:
		if input.Key != "" {
			w.game.KeyDown(input.Key)
		}
	case MsgTypeKeyUp:
		if input.Key != "" {
			w.game.KeyUp(input.Key)
		}
	case MsgTypeAction:
		before := w.game.Status()
		after := w.game.HandlePrimaryAction()
		w.announce(clientID, before, after)
	case MsgTypePause:
		before := w.game.Status()
		after := w.game.TogglePause()
		w.announce(clientID, before, after)
	case MsgTypeReset:
		if w.game.Status() == game.StatusOver {
			w.game.Reset()
			w.announce(clientID, game.StatusOver, w.game.Status())
		}
	default:
		log.Printf("Unknown input type %q from client %d", input.Type, clientID)
	}
}

// SimTime returns the simulation clock, which stands still while the game is paused or over
func (w *World) SimTime() time.Time {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.simTime
}

// Snapshot returns the current game view without draining explosions
func (w *World) Snapshot() game.Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.game.Snapshot()
}

// announce logs and broadcasts a status transition caused by a client
func (w *World) announce(clientID uint32, before, after game.Status) {
	if before == after {
		return
	}

	var event string
	switch {
	case before == game.StatusOver:
		event = EventReset
		w.metrics.observeState(w.game)
	case after == game.StatusPaused:
		event = EventPaused
	default:
		event = EventResumed
	}

	log.Printf("Client %d: game %s", clientID, event)
	w.broadcastEvent(event, "")
}

func (w *World) broadcastEvent(event, cause string) {
	msg := GameEventMsg{
		Event:      event,
		Score:      w.game.Score(),
		Multiplier: w.game.Multiplier(),
		Cause:      cause,
	}
	for _, client := range w.clients {
		client.sendGameEvent(msg)
	}
}

// broadcastSnapshot sends the current frame to all clients. Explosions are
// drained so each one is delivered exactly once.
func (w *World) broadcastSnapshot() {
	msg := SnapshotMsg{
		Type:     MsgTypeSnapshot,
		Time:     w.now().UnixMilli(),
		Snapshot: w.game.Snapshot(),
	}
	w.game.DrainExplosions()

	if len(w.clients) == 0 {
		return
	}

	data, err := msgpack.Marshal(msg)
	if err != nil {
		log.Printf("Error marshaling snapshot: %v", err)
		return
	}

	for _, client := range w.clients {
		client.enqueue(data)
	}
}
