package network

import (
	"errors"
	"net"
	"net/http"

	"go.uber.org/zap"

	"github.com/ratel-online/notepad/consts"
)

// Websocket serves the board feed to watchers.
type Websocket struct {
	addr   string
	server *http.Server
	logger *zap.Logger
}

func NewWebsocketServer(addr string, feed *Feed, logger *zap.Logger) *Websocket {
	if logger == nil {
		logger = zap.NewNop()
	}
	mux := http.NewServeMux()
	mux.Handle(consts.WatchPath, feed)
	return &Websocket{
		addr:   addr,
		server: &http.Server{Addr: addr, Handler: mux},
		logger: logger,
	}
}

// Serve blocks until Close is called.
func (w *Websocket) Serve() error {
	listener, err := net.Listen("tcp", w.addr)
	if err != nil {
		return err
	}
	w.logger.Info("websocket board feed listening", zap.String("addr", listener.Addr().String()), zap.String("path", consts.WatchPath))
	err = w.server.Serve(listener)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (w *Websocket) Close() error {
	return w.server.Close()
}
