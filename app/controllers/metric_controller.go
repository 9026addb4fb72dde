package controllers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/joegirolamo/obsidian-sub002/app/models"
	"github.com/joegirolamo/obsidian-sub002/app/repository"
	"github.com/joegirolamo/obsidian-sub002/internal/pkg/connectors"
	"github.com/joegirolamo/obsidian-sub002/internal/pkg/usercontext"
)

type metricRequest struct {
	Name              string `json:"name"`
	Description       string `json:"description"`
	Type              string `json:"type"`
	Value             string `json:"value"`
	Target            string `json:"target"`
	Benchmark         string `json:"benchmark"`
	IsClientRequested bool   `json:"is_client_requested"`
}

// HandleListMetrics returns all metrics for a business.
func HandleListMetrics(c *fiber.Ctx) error {
	business, err := requireBusiness(c)
	if err != nil {
		return err
	}

	metrics, err := repository.GetGlobalRepositories().Metric.GetByBusinessID(business.ID, false)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "Failed to load metrics")
	}

	return c.JSON(fiber.Map{"metrics": metrics})
}

// HandleUpsertMetric creates or updates the metric identified by its name.
func HandleUpsertMetric(c *fiber.Ctx) error {
	business, err := requireBusiness(c)
	if err != nil {
		return err
	}

	var req metricRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if req.Name == "" {
		return jsonError(c, fiber.StatusBadRequest, "Missing metric name")
	}
	if req.Type == "" {
		req.Type = models.MetricTypeText
	}
	if !models.IsValidMetricType(req.Type) {
		return jsonError(c, fiber.StatusBadRequest, "Unknown metric type")
	}

	metric := &models.Metric{
		BusinessID:        business.ID,
		Name:              req.Name,
		Description:       req.Description,
		Type:              req.Type,
		Value:             req.Value,
		Target:            req.Target,
		Benchmark:         req.Benchmark,
		IsClientRequested: req.IsClientRequested,
	}

	if err := repository.GetGlobalRepositories().Metric.Upsert(metric); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "Failed to save metric")
	}

	return c.JSON(metric)
}

// HandleDeleteMetric removes one metric belonging to the business.
func HandleDeleteMetric(c *fiber.Ctx) error {
	business, err := requireBusiness(c)
	if err != nil {
		return err
	}

	metricID, err := paramUint(c, "metricId")
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "Invalid metric id")
	}

	repos := repository.GetGlobalRepositories()
	metric, err := repos.Metric.GetByID(metricID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jsonError(c, fiber.StatusNotFound, "Metric not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "Failed to load metric")
	}
	if metric.BusinessID != business.ID {
		return jsonError(c, fiber.StatusNotFound, "Metric not found")
	}

	if err := repos.Metric.Delete(metric.ID); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "Failed to delete metric")
	}

	return c.JSON(fiber.Map{"message": "Metric deleted"})
}

// HandleSyncMetrics pulls fresh metric values from every granted provider the
// caller has a usable token for. Providers that fail are reported but do not
// abort the rest of the sync.
func HandleSyncMetrics(c *fiber.Ctx) error {
	business, err := requireBusiness(c)
	if err != nil {
		return err
	}

	repos := repository.GetGlobalRepositories()
	tools, err := repos.Tool.GetByBusinessID(business.ID)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "Failed to load tools")
	}

	userID := usercontext.GetUserID(c)
	synced := make([]string, 0)
	failed := make(map[string]string)

	for _, tool := range tools {
		if tool.Status != models.ToolStatusGranted {
			continue
		}

		conn, err := repos.Connection.Get(userID, tool.Provider)
		if err != nil {
			failed[tool.Provider] = "no connection"
			continue
		}
		if conn.IsExpired() {
			failed[tool.Provider] = "token expired"
			continue
		}

		connector, err := connectors.ForProvider(tool.Provider)
		if err != nil {
			failed[tool.Provider] = err.Error()
			continue
		}

		samples, err := connector.FetchMetrics(c.Context(), conn.AccessToken)
		if err != nil {
			log.Printf("metric sync failed for provider %s: %v", tool.Provider, err)
			failed[tool.Provider] = err.Error()
			continue
		}

		for _, sample := range samples {
			// Value-only upsert so a sync never clears admin-curated fields
			if _, err := repos.Metric.UpsertValue(business.ID, sample.Name, sample.Type, sample.Value); err != nil {
				log.Printf("metric upsert failed for %s/%s: %v", tool.Provider, sample.Name, err)
			}
		}

		synced = append(synced, tool.Provider)
	}

	return c.JSON(fiber.Map{
		"synced": synced,
		"failed": failed,
	})
}
