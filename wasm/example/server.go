//go:build !js

// Command server runs a shell in a pty, feeds its output through a
// textsurface.Console on the server and streams console snapshots to the
// browser over a websocket. Static files (the wasm bridge and a page) are
// served from the working directory.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"io"
	"log"
	"net/http"
	"os"
	"os/exec"
	"os/signal"
	"syscall"
	"time"

	"github.com/creack/pty"
	"github.com/gorilla/websocket"

	textsurface "github.com/vrosnet/go-text-surface"
)

var (
	addr     = flag.String("addr", ":8080", "listen address")
	cols     = flag.Int("cols", 80, "console columns")
	rows     = flag.Int("rows", 24, "console rows")
	interval = flag.Duration("interval", 100*time.Millisecond, "snapshot interval")
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

func handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade: %v", err)
		return
	}
	defer conn.Close()

	shell := os.Getenv("SHELL")
	if shell == "" {
		shell = "/bin/sh"
	}
	cmd := exec.Command(shell)
	cmd.Env = append(os.Environ(), "TERM=ansi")

	ptmx, err := pty.StartWithSize(cmd, &pty.Winsize{Rows: uint16(*rows), Cols: uint16(*cols)})
	if err != nil {
		log.Printf("pty start: %v", err)
		conn.WriteMessage(websocket.TextMessage, []byte(`{"error":"`+err.Error()+`"}`))
		return
	}
	defer func() {
		ptmx.Close()
		cmd.Process.Kill()
		cmd.Wait()
	}()

	// status replies go back to the program
	con := textsurface.NewConsole(
		textsurface.WithSize(*cols, *rows),
		textsurface.WithResponse(ptmx),
	)
	log.Printf("session started: %s", shell)

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	go func() {
		defer cancel()
		if _, err := io.Copy(con, ptmx); err != nil {
			log.Printf("pty read: %v", err)
		}
	}()

	go streamSnapshots(ctx, conn, con)

	// browser keystrokes -> pty
	for {
		msgType, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("websocket read: %v", err)
			}
			return
		}
		if msgType != websocket.BinaryMessage {
			continue
		}
		if _, err := ptmx.Write(data); err != nil {
			log.Printf("pty write: %v", err)
			return
		}
	}
}

// streamSnapshots sends a styled snapshot whenever the console content changes.
func streamSnapshots(ctx context.Context, conn *websocket.Conn, con *textsurface.Console) {
	ticker := time.NewTicker(*interval)
	defer ticker.Stop()

	var last []byte
	for {
		select {
		case <-ctx.Done():
			conn.Close()
			return
		case <-ticker.C:
			con.Update(*interval)
			data, err := json.Marshal(con.Snapshot(textsurface.SnapshotDetailStyled))
			if err != nil {
				log.Printf("snapshot: %v", err)
				continue
			}
			if string(data) == string(last) {
				continue
			}
			last = data
			if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
				log.Printf("websocket write: %v", err)
				return
			}
		}
	}
}

func main() {
	flag.Parse()

	http.Handle("/", http.FileServer(http.Dir(".")))
	http.HandleFunc("/ws", handleWebSocket)

	go func() {
		sigchan := make(chan os.Signal, 1)
		signal.Notify(sigchan, syscall.SIGINT, syscall.SIGTERM)
		<-sigchan
		log.Println("shutting down")
		os.Exit(0)
	}()

	log.Printf("listening on %s", *addr)
	log.Fatal(http.ListenAndServe(*addr, nil))
}
