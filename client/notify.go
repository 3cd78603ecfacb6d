package client

import (
	"context"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"

	"github.com/cultsicarias/File-Shrine/tool"
	"github.com/cultsicarias/File-Shrine/types"
)

// WatchNotifications connects to the notify websocket and refreshes the
// listing through OnListing whenever another client uploads files. Requires
// a prior Login. Refreshes are coalesced to at most one per second so a
// burst of uploads does not hammer the listing endpoint. Blocks until the
// context ends or the connection drops.
func (u *Uploader) WatchNotifications(ctx context.Context) error {
	wsURL := strings.Replace(u.baseURL, "http", "ws", 1) + "/notify-ws"
	dialer := websocket.Dialer{Jar: u.http.Jar}
	conn, resp, err := dialer.DialContext(ctx, wsURL, nil)
	if err != nil {
		return err
	}
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	defer conn.Close()

	go func() {
		<-ctx.Done()
		_ = conn.Close()
	}()

	refresh := rate.Sometimes{Interval: time.Second}
	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return err
		}
		var notification types.Notification
		if err := sonic.Unmarshal(payload, &notification); err != nil {
			tool.DefaultLogger.Debugf("Ignoring malformed notification: %v", err)
			continue
		}
		if notification.Type != types.NotifyTypeFileUploaded {
			continue
		}
		refresh.Do(func() {
			if u.OnListing == nil {
				return
			}
			files, err := u.ListFiles(ctx)
			if err != nil {
				tool.DefaultLogger.Errorf("Failed to refresh listing after notification: %v", err)
				return
			}
			u.OnListing(files)
		})
	}
}
