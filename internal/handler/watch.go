package handler

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"previewforge/internal/convert"
	"previewforge/internal/model"
)

const (
	watchWSWriteWait = 10 * time.Second
	watchWSPongWait  = 60 * time.Second
	watchWSPingEvery = (watchWSPongWait * 9) / 10
)

var watchWSUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(_ *http.Request) bool {
		return true
	},
}

type watchWSOutbound struct {
	Type       string   `json:"type"`
	Step       string   `json:"step,omitempty"`
	Detail     string   `json:"detail,omitempty"`
	ID         string   `json:"id,omitempty"`
	FileCount  int      `json:"fileCount,omitempty"`
	TotalBytes int      `json:"totalBytes,omitempty"`
	Warnings   []string `json:"warnings,omitempty"`
	Errors     []string `json:"errors,omitempty"`
	Message    string   `json:"message,omitempty"`
}

// HandleWatch streams per-file progress for one conversion over a websocket.
// The client sends the component model as its first text message; the server
// answers with progress events and a final summary, then closes.
func (h *Handler) HandleWatch(w http.ResponseWriter, r *http.Request) {
	conn, err := watchWSUpgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	if err := conn.SetReadDeadline(time.Now().Add(watchWSPongWait)); err != nil {
		log.Printf("watch ws set read deadline failed: %v", err)
		return
	}
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(watchWSPongWait))
	})

	writeCh := make(chan watchWSOutbound, 32)
	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		ticker := time.NewTicker(watchWSPingEvery)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case out, ok := <-writeCh:
				if !ok {
					return
				}
				if err := conn.SetWriteDeadline(time.Now().Add(watchWSWriteWait)); err != nil {
					return
				}
				if err := conn.WriteJSON(out); err != nil {
					return
				}
			case <-ticker.C:
				if err := conn.SetWriteDeadline(time.Now().Add(watchWSWriteWait)); err != nil {
					return
				}
				if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
					return
				}
			}
		}
	}()

	_, body, err := conn.ReadMessage()
	if err != nil {
		cancel()
		<-writerDone
		return
	}

	id := modelHash(body)

	m, err := model.Decode(body)
	if err != nil {
		pushWatchWS(ctx, writeCh, watchWSOutbound{Type: "error", Message: err.Error()})
		closeWatchWS(cancel, writeCh, writerDone)
		return
	}

	conv, err := convert.New(m, convert.WithObserver(convert.ObserverFunc(func(step, detail string) {
		pushWatchWS(ctx, writeCh, watchWSOutbound{Type: "progress", Step: step, Detail: detail})
	})))
	if err != nil {
		pushWatchWS(ctx, writeCh, watchWSOutbound{Type: "error", Message: err.Error()})
		closeWatchWS(cancel, writeCh, writerDone)
		return
	}

	result := conv.Convert()
	h.cache.Add(id, result)
	h.recordConversion(id, result, "")

	pushWatchWS(ctx, writeCh, watchWSOutbound{
		Type:       "done",
		ID:         id,
		FileCount:  result.FileCount(),
		TotalBytes: result.TotalBytes(),
		Warnings:   result.Warnings,
		Errors:     result.Errors,
	})
	closeWatchWS(cancel, writeCh, writerDone)
}

func pushWatchWS(ctx context.Context, ch chan<- watchWSOutbound, out watchWSOutbound) {
	select {
	case <-ctx.Done():
	case ch <- out:
	}
}

// closeWatchWS lets the writer drain queued events before tearing down.
func closeWatchWS(cancel context.CancelFunc, writeCh chan watchWSOutbound, writerDone <-chan struct{}) {
	close(writeCh)
	<-writerDone
	cancel()
}
