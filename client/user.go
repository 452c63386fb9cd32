package client

import (
	"context"
	"net/http"
	"net/url"

	types "github.com/anoman-dev/Airdrop-tracker/types/v1"
)

func (c *Client) GetUser(ctx context.Context, userID string) (*types.User, error) {
	var user types.User
	if err := c.doJSON(ctx, http.MethodGet, "/api/users/"+url.PathEscape(userID), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) ListUserAirdrops(ctx context.Context, userID string) ([]types.UserAirdropStatus, error) {
	var statuses []types.UserAirdropStatus
	path := "/api/users/" + url.PathEscape(userID) + "/airdrops"
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &statuses); err != nil {
		return nil, err
	}
	return statuses, nil
}

func (c *Client) Checkin(ctx context.Context, userID string) (*types.CheckinResult, error) {
	var res types.CheckinResult
	path := "/api/users/" + url.PathEscape(userID) + "/checkin"
	if err := c.doJSON(ctx, http.MethodPost, path, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) TrackAirdrop(ctx context.Context, userID string, airdropID string) (*types.TrackResult, error) {
	var res types.TrackResult
	path := "/api/users/" + url.PathEscape(userID) + "/airdrops/" + url.PathEscape(airdropID) + "/track"
	if err := c.doJSON(ctx, http.MethodPost, path, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) CompleteTask(ctx context.Context, userID string, airdropID string, taskID string) (*types.CompleteTaskResult, error) {
	var res types.CompleteTaskResult
	path := "/api/users/" + url.PathEscape(userID) +
		"/airdrops/" + url.PathEscape(airdropID) +
		"/tasks/" + url.PathEscape(taskID) + "/complete"
	if err := c.doJSON(ctx, http.MethodPost, path, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
