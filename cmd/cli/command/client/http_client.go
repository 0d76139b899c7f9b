package client

// http_client.go handles HTTP client functionality for the foodgram CLI.

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// defines the HTTP client structure and methods
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

// Auth request/response structures
type RegisterRequest struct {
	Email     string `json:"email"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Password  string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	UserID       string `json:"user_id"`
	Username     string `json:"username"`
	ExpiresIn    int64  `json:"expires_in"`
}

type RegisterResponse struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Catalog response structures
type TagResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Slug  string `json:"slug"`
}

type IngredientResponse struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
}

// Recipe response structures
type UserResponse struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Username     string `json:"username"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	IsSubscribed bool   `json:"is_subscribed"`
}

type IngredientLineResponse struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
	Amount          int64  `json:"amount"`
}

type RecipeResponse struct {
	ID               int64                    `json:"id"`
	Author           UserResponse             `json:"author"`
	Name             string                   `json:"name"`
	Image            string                   `json:"image"`
	Text             string                   `json:"text"`
	CookingTime      int                      `json:"cooking_time"`
	Tags             []TagResponse            `json:"tags"`
	Ingredients      []IngredientLineResponse `json:"ingredients"`
	IsFavorited      bool                     `json:"is_favorited"`
	IsInShoppingCart bool                     `json:"is_in_shopping_cart"`
}

type ShortRecipeResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	CookingTime int    `json:"cooking_time"`
}

type SubscribedAuthorResponse struct {
	ID           string                `json:"id"`
	Email        string                `json:"email"`
	Username     string                `json:"username"`
	FirstName    string                `json:"first_name"`
	LastName     string                `json:"last_name"`
	IsSubscribed bool                  `json:"is_subscribed"`
	Recipes      []ShortRecipeResponse `json:"recipes"`
	RecipesCount int64                 `json:"recipes_count"`
}

type Page[T any] struct {
	Count    int64 `json:"count"`
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
	Results  []T   `json:"results"`
}

// constructor for HTTP client
func NewHTTPClient(apiURL string) *HTTPClient {
	return &HTTPClient{
		baseURL: apiURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// set token for HTTP client
func (c *HTTPClient) SetToken(token string) {
	c.token = token
}

// do sends a JSON request and decodes the JSON response into out (out may be
// nil for empty responses).
func (c *HTTPClient) do(method, path string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	response, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		var apiErr struct {
			Error string `json:"error"`
		}
		if json.NewDecoder(response.Body).Decode(&apiErr) == nil && apiErr.Error != "" {
			return fmt.Errorf("%s %s failed: %s (%s)", method, path, apiErr.Error, response.Status)
		}
		return fmt.Errorf("%s %s failed with status: %s", method, path, response.Status)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(response.Body).Decode(out)
}

// Auth

func (c *HTTPClient) Register(request *RegisterRequest) (*RegisterResponse, error) {
	var out RegisterResponse
	if err := c.do(http.MethodPost, "/api/auth/register", request, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Login(request *LoginRequest) (*AuthResponse, error) {
	var out AuthResponse
	if err := c.do(http.MethodPost, "/api/auth/login", request, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Logout(refreshToken string) error {
	body := map[string]string{"refresh_token": refreshToken}
	return c.do(http.MethodPost, "/api/auth/logout", body, nil)
}

// Catalogs

func (c *HTTPClient) ListTags() ([]TagResponse, error) {
	var out []TagResponse
	if err := c.do(http.MethodGet, "/api/tags", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) SearchIngredients(name string) ([]IngredientResponse, error) {
	var out []IngredientResponse
	path := "/api/ingredients"
	if name != "" {
		path += "?name=" + url.QueryEscape(name)
	}
	if err := c.do(http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Recipes

func (c *HTTPClient) ListRecipes(page, pageSize int, tags []string) (*Page[RecipeResponse], error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("page_size", strconv.Itoa(pageSize))
	for _, t := range tags {
		q.Add("tags", t)
	}

	var out Page[RecipeResponse]
	if err := c.do(http.MethodGet, "/api/recipes?"+q.Encode(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) GetRecipe(id int64) (*RecipeResponse, error) {
	var out RecipeResponse
	if err := c.do(http.MethodGet, fmt.Sprintf("/api/recipes/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Favorites & shopping cart

func (c *HTTPClient) AddFavorite(recipeID int64) (*ShortRecipeResponse, error) {
	var out ShortRecipeResponse
	if err := c.do(http.MethodPost, fmt.Sprintf("/api/recipes/%d/favorite", recipeID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) RemoveFavorite(recipeID int64) error {
	return c.do(http.MethodDelete, fmt.Sprintf("/api/recipes/%d/favorite", recipeID), nil, nil)
}

func (c *HTTPClient) AddToCart(recipeID int64) (*ShortRecipeResponse, error) {
	var out ShortRecipeResponse
	if err := c.do(http.MethodPost, fmt.Sprintf("/api/recipes/%d/shopping_cart", recipeID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) RemoveFromCart(recipeID int64) error {
	return c.do(http.MethodDelete, fmt.Sprintf("/api/recipes/%d/shopping_cart", recipeID), nil, nil)
}

// DownloadShoppingList fetches the rendered purchase list as raw text.
func (c *HTTPClient) DownloadShoppingList() ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, c.baseURL+"/api/recipes/download_shopping_cart", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	response, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download failed with status: %s", response.Status)
	}
	return io.ReadAll(response.Body)
}

// Subscriptions

func (c *HTTPClient) Subscribe(userID string, recipesLimit int) (*SubscribedAuthorResponse, error) {
	path := fmt.Sprintf("/api/users/%s/subscribe", userID)
	if recipesLimit > 0 {
		path += "?recipes_limit=" + strconv.Itoa(recipesLimit)
	}

	var out SubscribedAuthorResponse
	if err := c.do(http.MethodPost, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Unsubscribe(userID string) error {
	return c.do(http.MethodDelete, fmt.Sprintf("/api/users/%s/subscribe", userID), nil, nil)
}

func (c *HTTPClient) Subscriptions(page, pageSize int) (*Page[SubscribedAuthorResponse], error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("page_size", strconv.Itoa(pageSize))

	var out Page[SubscribedAuthorResponse]
	if err := c.do(http.MethodGet, "/api/users/subscriptions?"+q.Encode(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
