package api

import (
	"context"
	"fmt"
	"net/http"
)

// DashboardBaseURL is the public dashboard host used when generating
// deployable application links.
const DashboardBaseURL = "https://cloud.vecdb.ai"

// Deployables wraps the deployable (shareable search app) endpoints.
type Deployables struct {
	client *Client
}

// Deployable describes one deployable configuration as stored on the
// service.
type Deployable struct {
	DeployableID  string                 `json:"deployable_id"`
	DatasetID     string                 `json:"dataset_id"`
	ProjectID     string                 `json:"project_id"`
	APIKey        string                 `json:"api_key"`
	Configuration map[string]interface{} `json:"configuration"`
}

// Create builds a private deployable from an existing dataset.
func (d *Deployables) Create(ctx context.Context, datasetID string, configuration map[string]interface{}) (Deployable, error) {
	if datasetID == "" {
		return Deployable{}, fmt.Errorf("api: dataset id cannot be empty")
	}
	if configuration == nil {
		configuration = map[string]interface{}{}
	}
	var resp Deployable
	err := d.client.do(ctx, http.MethodPost, "deployables/create",
		map[string]any{"dataset_id": datasetID, "configuration": configuration}, &resp)
	return resp, err
}

// Share makes a private deployable publicly accessible.
func (d *Deployables) Share(ctx context.Context, deployableID string) error {
	return d.client.do(ctx, http.MethodPost,
		fmt.Sprintf("deployables/%s/share", deployableID), nil, nil)
}

// Unshare reverts a shared deployable to private.
func (d *Deployables) Unshare(ctx context.Context, deployableID string) error {
	return d.client.do(ctx, http.MethodPost,
		fmt.Sprintf("deployables/%s/private", deployableID), nil, nil)
}

// Update replaces a deployable's dataset binding and configuration.
func (d *Deployables) Update(ctx context.Context, deployableID, datasetID string, configuration map[string]interface{}) error {
	return d.client.do(ctx, http.MethodPost,
		fmt.Sprintf("deployables/%s/update", deployableID),
		map[string]any{
			"dataset_id":    datasetID,
			"configuration": configuration,
			"overwrite":     true,
			"upsert":        true,
		}, nil)
}

// Get fetches one deployable.
func (d *Deployables) Get(ctx context.Context, deployableID string) (Deployable, error) {
	var resp Deployable
	err := d.client.do(ctx, http.MethodGet,
		fmt.Sprintf("deployables/%s/get", deployableID), nil, &resp)
	return resp, err
}

// Delete removes a deployable.
func (d *Deployables) Delete(ctx context.Context, deployableID string) error {
	return d.client.do(ctx, http.MethodPost, "deployables/delete",
		map[string]any{"id": deployableID}, nil)
}

// List returns every deployable in the project.
func (d *Deployables) List(ctx context.Context) ([]Deployable, int, error) {
	var resp struct {
		Deployables []Deployable `json:"deployables"`
		Count       int          `json:"count"`
	}
	if err := d.client.do(ctx, http.MethodGet, "deployables/list", nil, &resp); err != nil {
		return nil, 0, err
	}
	return resp.Deployables, resp.Count, nil
}

// URL generates the public dashboard link for a deployable application.
func (d *Deployables) URL(deployableID, datasetID, application string) string {
	return fmt.Sprintf("%s/dataset/%s/deploy/%s/%s/%s/%s",
		DashboardBaseURL, datasetID, d.client.project, application, d.client.apiKey, deployableID)
}
