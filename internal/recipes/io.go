package recipes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/hashicorp/go-retryablehttp"
)

// ReadRecipe decodes a recipe from its backend JSON form.
func ReadRecipe(r io.Reader) (*Recipe, error) {
	var recipe Recipe
	if err := json.NewDecoder(r).Decode(&recipe); err != nil {
		return nil, fmt.Errorf("failed to decode recipe: %w", err)
	}
	if recipe.Title == "" && len(recipe.Ingredients) == 0 {
		return nil, errors.New("recipe has no title and no ingredients")
	}
	return &recipe, nil
}

// FetchRecipe pulls a recipe from the backend API. The backend flakes
// occasionally so GETs are retried with backoff.
func FetchRecipe(ctx context.Context, url string) (*Recipe, error) {
	client := retryablehttp.NewClient()
	client.RetryMax = 3
	client.Logger = nil

	req, err := retryablehttp.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build recipe request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recipe from %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("recipe fetch from %s returned status %d", url, resp.StatusCode)
	}
	return ReadRecipe(resp.Body)
}
