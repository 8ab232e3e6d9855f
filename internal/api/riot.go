package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"sync"
	"time"
	"riftlens/internal/config"
	"riftlens/internal/domain"

	"github.com/bytedance/sonic"
	"github.com/valyala/fasthttp"
	"golang.org/x/time/rate"
)

// RiotClient is a thin gateway over the Riot HTTP API. It performs exactly
// one GET per call, never retries and never caches.
type RiotClient struct {
	apiKey      string
	baseURL     string
	client      *fasthttp.Client
	limiter     *rate.Limiter
	rateLimitMu sync.RWMutex
	rateLimit   RateLimitInfo
}

// RateLimitInfo is the last application rate-limit state reported upstream.
type RateLimitInfo struct {
	AppLimit       string    `json:"app_limit"`
	AppCount       string    `json:"app_count"`
	MethodLimit    string    `json:"method_limit"`
	MethodCount    string    `json:"method_count"`
	LastRetryAfter int       `json:"last_retry_after"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func NewRiotClient(cfg *config.Config) *RiotClient {
	return &RiotClient{
		apiKey:  cfg.RiotAPIKey,
		baseURL: cfg.RiotBaseURL,
		client: &fasthttp.Client{
			MaxConnsPerHost:     100,
			ReadTimeout:         10 * time.Second,
			WriteTimeout:        10 * time.Second,
			MaxIdleConnDuration: 1 * time.Minute,
		},
		limiter: rate.NewLimiter(rate.Limit(cfg.RiotRateLimit), cfg.RiotRateBurst),
	}
}

func (c *RiotClient) GetRateLimitInfo() RateLimitInfo {
	c.rateLimitMu.RLock()
	defer c.rateLimitMu.RUnlock()
	return c.rateLimit
}

func (c *RiotClient) updateRateLimit(resp *fasthttp.Response, retryAfter int) {
	c.rateLimitMu.Lock()
	defer c.rateLimitMu.Unlock()

	if v := string(resp.Header.Peek("X-App-Rate-Limit")); v != "" {
		c.rateLimit.AppLimit = v
	}
	if v := string(resp.Header.Peek("X-App-Rate-Limit-Count")); v != "" {
		c.rateLimit.AppCount = v
	}
	if v := string(resp.Header.Peek("X-Method-Rate-Limit")); v != "" {
		c.rateLimit.MethodLimit = v
	}
	if v := string(resp.Header.Peek("X-Method-Rate-Limit-Count")); v != "" {
		c.rateLimit.MethodCount = v
	}
	if retryAfter > 0 {
		c.rateLimit.LastRetryAfter = retryAfter
	}
	c.rateLimit.UpdatedAt = time.Now()
}

func (c *RiotClient) platformURL(region domain.Region, path string) string {
	if c.baseURL != "" {
		return c.baseURL + path
	}
	return fmt.Sprintf("https://%s.api.riotgames.com%s", region, path)
}

func (c *RiotClient) regionalURL(region domain.Region, path string) string {
	if c.baseURL != "" {
		return c.baseURL + path
	}
	return fmt.Sprintf("https://%s.api.riotgames.com%s", region.Route(), path)
}

func (c *RiotClient) GetAccountByRiotID(ctx context.Context, region domain.Region, gameName, tagLine string) (*AccountDTO, error) {
	path := fmt.Sprintf("/riot/account/v1/accounts/by-riot-id/%s/%s", url.PathEscape(gameName), url.PathEscape(tagLine))
	return doRequest[AccountDTO](ctx, c, c.regionalURL(region, path), path)
}

func (c *RiotClient) GetSummonerByPuuid(ctx context.Context, region domain.Region, puuid string) (*SummonerDTO, error) {
	path := "/lol/summoner/v4/summoners/by-puuid/" + url.PathEscape(puuid)
	return doRequest[SummonerDTO](ctx, c, c.platformURL(region, path), path)
}

func (c *RiotClient) GetLeagueEntries(ctx context.Context, region domain.Region, puuid string) ([]LeagueEntryDTO, error) {
	path := "/lol/league/v4/entries/by-puuid/" + url.PathEscape(puuid)
	entries, err := doRequest[[]LeagueEntryDTO](ctx, c, c.platformURL(region, path), path)
	if err != nil {
		return nil, err
	}
	return *entries, nil
}

func (c *RiotClient) GetMatchIDs(ctx context.Context, region domain.Region, puuid string, start, count int) ([]string, error) {
	path := fmt.Sprintf("/lol/match/v5/matches/by-puuid/%s/ids?start=%d&count=%d", url.PathEscape(puuid), start, count)
	ids, err := doRequest[[]string](ctx, c, c.regionalURL(region, path), path)
	if err != nil {
		return nil, err
	}
	return *ids, nil
}

func (c *RiotClient) GetMatch(ctx context.Context, region domain.Region, matchID string) (*MatchDTO, error) {
	path := "/lol/match/v5/matches/" + url.PathEscape(matchID)
	return doRequest[MatchDTO](ctx, c, c.regionalURL(region, path), path)
}

func (c *RiotClient) GetMatchTimeline(ctx context.Context, region domain.Region, matchID string) (*TimelineDTO, error) {
	path := "/lol/match/v5/matches/" + url.PathEscape(matchID) + "/timeline"
	return doRequest[TimelineDTO](ctx, c, c.regionalURL(region, path), path)
}

func (c *RiotClient) GetTopMastery(ctx context.Context, region domain.Region, puuid string, count int) ([]MasteryDTO, error) {
	path := fmt.Sprintf("/lol/champion-mastery/v4/champion-masteries/by-puuid/%s/top?count=%d", url.PathEscape(puuid), count)
	entries, err := doRequest[[]MasteryDTO](ctx, c, c.platformURL(region, path), path)
	if err != nil {
		return nil, err
	}
	return *entries, nil
}

func doRequest[T any](ctx context.Context, client *RiotClient, fullURL, path string) (*T, error) {
	if err := client.limiter.Wait(ctx); err != nil {
		return nil, newTransportError(path, err)
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(fullURL)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("X-Riot-Token", client.apiKey)
	req.Header.Set("Accept", "application/json")

	if err := do(ctx, client.client, req, resp); err != nil {
		return nil, newTransportError(path, err)
	}

	retryAfter, _ := strconv.Atoi(string(resp.Header.Peek("Retry-After")))
	client.updateRateLimit(resp, retryAfter)

	if status := resp.StatusCode(); status < 200 || status > 299 {
		return nil, newStatusError(status, path, time.Duration(retryAfter)*time.Second)
	}

	var result T
	if err := sonic.Unmarshal(resp.Body(), &result); err != nil {
		return nil, newDecodeError(path, err)
	}
	return &result, nil
}

func do(ctx context.Context, client *fasthttp.Client, req *fasthttp.Request, resp *fasthttp.Response) error {
	if deadline, ok := ctx.Deadline(); ok {
		return client.DoDeadline(req, resp, deadline)
	}
	return client.Do(req, resp)
}
