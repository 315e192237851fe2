package network

import (
	"net/http"
	"sync"
	"sync/atomic"

	"github.com/awesome-cap/hashmap"
	"github.com/gorilla/websocket"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"

	"github.com/ratel-online/notepad/clue/card"
	"github.com/ratel-online/notepad/clue/event"
	"github.com/ratel-online/notepad/clue/game"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var watcherIds int64 = 0
var watchers = hashmap.New()

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Frame is one board update as sent to watchers.
type Frame struct {
	Turns    int               `json:"turns"`
	Players  []string          `json:"players,omitempty"`
	Cards    []FrameCard       `json:"cards,omitempty"`
	Solution map[string]string `json:"solution,omitempty"`
	Error    string            `json:"error,omitempty"`
}

type FrameCard struct {
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Cells    []string `json:"cells"`
}

var cellNames = map[game.Status]string{
	game.Unknown: "",
	game.Yes:     "yes",
	game.No:      "no",
	game.Maybe:   "maybe",
}

func NewFrame(payload event.BoardRebuiltPayload) Frame {
	frame := Frame{Turns: payload.Turns}
	if payload.Err != nil {
		frame.Error = payload.Err.Error()
		return frame
	}
	state := payload.State
	if state == nil {
		return frame
	}
	vocab := state.Vocabulary()
	frame.Players = state.Players()
	frame.Solution = map[string]string{}
	for c := 0; c < vocab.Len(); c++ {
		cells := make([]string, len(frame.Players))
		for p := range frame.Players {
			cells[p] = cellNames[state.At(c, p)]
		}
		frame.Cards = append(frame.Cards, FrameCard{
			Name:     vocab.Card(c).Name,
			Category: vocab.Card(c).Category.String(),
			Cells:    cells,
		})
	}
	for _, category := range card.Categories() {
		if solution, ok := state.Solution(category); ok {
			frame.Solution[category.String()] = solution.Name
		}
	}
	return frame
}

type watcher struct {
	sync.Mutex
	id   int64
	feed *Feed
	conn *websocket.Conn
}

func (w *watcher) write(data []byte) error {
	w.Lock()
	defer w.Unlock()
	return w.conn.WriteMessage(websocket.TextMessage, data)
}

// Feed pushes every rebuilt board to connected websocket watchers. Watchers
// are read-only; anything they send is discarded.
type Feed struct {
	mu     sync.RWMutex
	last   []byte
	logger *zap.Logger
}

func NewFeed(logger *zap.Logger) *Feed {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Feed{logger: logger}
}

func (f *Feed) OnBoardRebuilt(payload event.BoardRebuiltPayload) {
	data, err := json.Marshal(NewFrame(payload))
	if err != nil {
		f.logger.Error("encode board frame", zap.Error(err))
		return
	}
	f.mu.Lock()
	f.last = data
	f.mu.Unlock()
	f.broadcast(data)
}

func (f *Feed) broadcast(data []byte) {
	var targets []*watcher
	watchers.Foreach(func(e *hashmap.Entry) {
		if w := e.Value().(*watcher); w.feed == f {
			targets = append(targets, w)
		}
	})
	for _, w := range targets {
		if err := w.write(data); err != nil {
			f.logger.Info("watcher dropped", zap.Int64("watcher", w.id), zap.Error(err))
			f.remove(w)
		}
	}
}

func (f *Feed) remove(w *watcher) {
	watchers.Del(w.id)
	_ = w.conn.Close()
}

func (f *Feed) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(rw, r, nil)
	if err != nil {
		f.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	w := &watcher{
		id:   atomic.AddInt64(&watcherIds, 1),
		feed: f,
		conn: conn,
	}
	watchers.Set(w.id, w)
	f.logger.Info("watcher connected", zap.Int64("watcher", w.id), zap.String("remote", r.RemoteAddr))
	defer f.remove(w)

	f.mu.RLock()
	last := f.last
	f.mu.RUnlock()
	if last != nil {
		if err := w.write(last); err != nil {
			return
		}
	}
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			f.logger.Debug("watcher disconnected", zap.Int64("watcher", w.id), zap.Error(err))
			return
		}
	}
}
