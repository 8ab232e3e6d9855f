package api

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
	"riftlens/internal/config"
	"riftlens/internal/domain"

	"github.com/bytedance/sonic"
	"github.com/valyala/fasthttp"
)

var errEmptyManifest = errors.New("empty version manifest")

const runeIconBase = "https://raw.communitydragon.org/latest/plugins/rcp-be-lol-game-data/global/default/v1/"

// DataDragonClient reads the public versioned static catalogs. No key is required.
type DataDragonClient struct {
	baseURL string
	client  *fasthttp.Client
}

func NewDataDragonClient(cfg *config.Config) *DataDragonClient {
	return &DataDragonClient{
		baseURL: strings.TrimRight(cfg.DataDragonBaseURL, "/"),
		client: &fasthttp.Client{
			MaxConnsPerHost:     16,
			ReadTimeout:         30 * time.Second,
			WriteTimeout:        10 * time.Second,
			MaxResponseBodySize: 64 << 20,
		},
	}
}

type ddragonChampion struct {
	ID    string   `json:"id"`
	Key   string   `json:"key"`
	Name  string   `json:"name"`
	Title string   `json:"title"`
	Tags  []string `json:"tags"`
}

type ddragonItem struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Gold        struct {
		Total int `json:"total"`
	} `json:"gold"`
	Tags []string `json:"tags"`
}

type ddragonRuneTree struct {
	ID    int    `json:"id"`
	Key   string `json:"key"`
	Name  string `json:"name"`
	Slots []struct {
		Runes []struct {
			ID        int    `json:"id"`
			Name      string `json:"name"`
			ShortDesc string `json:"shortDesc"`
			Icon      string `json:"icon"`
		} `json:"runes"`
	} `json:"slots"`
}

type ddragonEnvelope[T any] struct {
	Data map[string]T `json:"data"`
}

// LatestVersion returns the first entry of the version manifest.
func (c *DataDragonClient) LatestVersion(ctx context.Context) (string, error) {
	var versions []string
	if err := c.getJSON(ctx, "/api/versions.json", &versions); err != nil {
		return "", err
	}
	if len(versions) == 0 {
		return "", newDecodeError("/api/versions.json", errEmptyManifest)
	}
	return versions[0], nil
}

func (c *DataDragonClient) Champions(ctx context.Context, version string) ([]domain.Champion, error) {
	var env ddragonEnvelope[ddragonChampion]
	if err := c.getJSON(ctx, fmt.Sprintf("/cdn/%s/data/en_US/champion.json", version), &env); err != nil {
		return nil, err
	}

	champions := make([]domain.Champion, 0, len(env.Data))
	for _, ch := range env.Data {
		id, err := strconv.Atoi(ch.Key)
		if err != nil {
			continue
		}
		champions = append(champions, domain.Champion{
			ID:           id,
			Key:          ch.ID,
			Name:         ch.Name,
			Title:        ch.Title,
			ImageURL:     c.ChampionImageURL(version, ch.ID),
			Tags:         ch.Tags,
			PatchVersion: version,
		})
	}
	sort.Slice(champions, func(i, j int) bool { return champions[i].ID < champions[j].ID })
	return champions, nil
}

func (c *DataDragonClient) Items(ctx context.Context, version string) ([]domain.Item, error) {
	var env ddragonEnvelope[ddragonItem]
	if err := c.getJSON(ctx, fmt.Sprintf("/cdn/%s/data/en_US/item.json", version), &env); err != nil {
		return nil, err
	}

	items := make([]domain.Item, 0, len(env.Data))
	for key, it := range env.Data {
		id, err := strconv.Atoi(key)
		if err != nil {
			continue
		}
		items = append(items, domain.Item{
			ID:           id,
			Name:         it.Name,
			Description:  it.Description,
			ImageURL:     fmt.Sprintf("%s/cdn/%s/img/item/%d.png", c.baseURL, version, id),
			Gold:         it.Gold.Total,
			Tags:         it.Tags,
			PatchVersion: version,
		})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

// Runes flattens tree -> slot -> rune; Slot is the index of the slot within its tree.
func (c *DataDragonClient) Runes(ctx context.Context, version string) ([]domain.Rune, error) {
	var trees []ddragonRuneTree
	if err := c.getJSON(ctx, fmt.Sprintf("/cdn/%s/data/en_US/runesReforged.json", version), &trees); err != nil {
		return nil, err
	}

	var runes []domain.Rune
	for _, tree := range trees {
		for slot, s := range tree.Slots {
			for _, r := range s.Runes {
				runes = append(runes, domain.Rune{
					ID:           r.ID,
					Name:         r.Name,
					Description:  r.ShortDesc,
					ImageURL:     runeIconBase + strings.ToLower(r.Icon),
					TreeID:       tree.ID,
					TreeName:     tree.Name,
					Slot:         slot,
					PatchVersion: version,
				})
			}
		}
	}
	return runes, nil
}

func (c *DataDragonClient) ChampionImageURL(version, key string) string {
	return fmt.Sprintf("%s/cdn/%s/img/champion/%s.png", c.baseURL, version, key)
}

func (c *DataDragonClient) getJSON(ctx context.Context, path string, out any) error {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.baseURL + path)
	req.Header.SetMethod(fasthttp.MethodGet)

	if err := do(ctx, c.client, req, resp); err != nil {
		return newTransportError(path, err)
	}
	if status := resp.StatusCode(); status < 200 || status > 299 {
		return newStatusError(status, path, 0)
	}
	if err := sonic.Unmarshal(resp.Body(), out); err != nil {
		return newDecodeError(path, err)
	}
	return nil
}
