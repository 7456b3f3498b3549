package e2e

import (
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/gookit/color"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/require"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Full post / follow / wall loop against a running server.
func TestScenario_PostFollowWall(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)
	if cfg.ServerAddr == "" {
		t.Skip("set CRAFTY_SERVER_ADDR to run the e2e suite")
	}
	req := require.New(t)

	// Unique names so reruns against a persistent backend stay clean.
	suffix := fmt.Sprintf("%d", time.Now().UnixNano())
	alice := "alice-" + suffix
	charlie := "charlie-" + suffix

	logStep(t, cfg, "post as "+alice)
	postJSON(t, cfg, "/messages", fmt.Sprintf(`{"author":%q,"text":"I love the weather today"}`, alice), http.StatusCreated)

	logStep(t, cfg, charlie+" follows "+alice)
	postJSON(t, cfg, "/users/"+charlie+"/follow", fmt.Sprintf(`{"userToFollow":%q}`, alice), http.StatusOK)

	logStep(t, cfg, "wall of "+charlie)
	response, err := http.Get(cfg.ServerAddr + "/users/" + charlie + "/wall")
	req.NoError(err)
	defer response.Body.Close()
	req.Equal(http.StatusOK, response.StatusCode)

	var body struct {
		Wall struct {
			User     string `json:"user"`
			Messages []struct {
				Author          string `json:"author"`
				Text            string `json:"text"`
				PublicationTime string `json:"publicationTime"`
			} `json:"messages"`
			Following []string `json:"following"`
		} `json:"wall"`
	}
	req.NoError(json.NewDecoder(response.Body).Decode(&body))

	req.Equal(charlie, body.Wall.User)
	req.Equal([]string{alice}, body.Wall.Following)
	req.Len(body.Wall.Messages, 1)
	req.Equal(alice, body.Wall.Messages[0].Author)
	req.Equal("I love the weather today", body.Wall.Messages[0].Text)
	req.Equal("less than a minute ago", body.Wall.Messages[0].PublicationTime)
}

func postJSON(t *testing.T, cfg Config, path, body string, wantStatus int) {
	t.Helper()
	response, err := http.Post(cfg.ServerAddr+path, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer response.Body.Close()
	require.Equal(t, wantStatus, response.StatusCode)
}

func logStep(t *testing.T, cfg Config, step string) {
	header := fmt.Sprintf("  ====== %s ======", step)
	if cfg.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	t.Log(header)
}
