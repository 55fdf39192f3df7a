package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/AarazooSingh1506/autism-detction-system/internal/config"
	"github.com/AarazooSingh1506/autism-detction-system/internal/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

type AdminHandler struct {
	log *zap.Logger
}

func NewAdminHandler(log *zap.Logger) *AdminHandler {
	return &AdminHandler{log: log}
}

// Summary returns the headline numbers for the admin dashboard plus the
// ten most recent assessments.
func (h *AdminHandler) Summary(c *gin.Context) {
	ctx := c.Request.Context()

	users, err := repository.CountUsers(ctx)
	if err != nil {
		h.fail(c, "Failed to count users", err)
		return
	}
	total, err := repository.CountAssessments(ctx)
	if err != nil {
		h.fail(c, "Failed to count assessments", err)
		return
	}
	positive, err := repository.CountPositive(ctx, config.Conf.Model.PositiveThreshold)
	if err != nil {
		h.fail(c, "Failed to count positive assessments", err)
		return
	}
	recent, err := repository.ListAssessments(ctx, 10)
	if err != nil {
		h.fail(c, "Failed to list recent assessments", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"users":       users,
		"assessments": total,
		"positive":    positive,
		"recent":      recent,
	})
}

// Assessments returns every assessment with its owner's username.
func (h *AdminHandler) Assessments(c *gin.Context) {
	rows, err := repository.ListAssessments(c.Request.Context(), 0)
	if err != nil {
		h.fail(c, "Failed to list assessments", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"assessments": rows})
}

// Users returns every registered account. Password hashes never leave the
// model thanks to its json tag.
func (h *AdminHandler) Users(c *gin.Context) {
	users, err := repository.ListUsers(c.Request.Context())
	if err != nil {
		h.fail(c, "Failed to list users", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

// Analytics returns group-by tallies, mean question scores and ready-made
// ECharts options for the admin charts.
func (h *AdminHandler) Analytics(c *gin.Context) {
	ctx := c.Request.Context()

	tallies := make(map[string][]repository.Tally, 3)
	for _, column := range []string{"ethnicity", "jaundice", "autism_family"} {
		t, err := repository.GroupTally(ctx, column)
		if err != nil {
			h.fail(c, "Failed to compute group tally", err)
			return
		}
		tallies[column] = t
	}

	meanScores, err := repository.MeanScores(ctx)
	if err != nil {
		h.fail(c, "Failed to compute mean scores", err)
		return
	}
	predictions, err := repository.AllPredictions(ctx)
	if err != nil {
		h.fail(c, "Failed to load predictions", err)
		return
	}
	ages, err := repository.AgeDistribution(ctx)
	if err != nil {
		h.fail(c, "Failed to compute age distribution", err)
		return
	}
	genders, err := repository.GroupTally(ctx, "gender")
	if err != nil {
		h.fail(c, "Failed to compute gender tally", err)
		return
	}

	chartOptions := gin.H{
		"prediction_histogram": chartJSON(predictionHistogram(predictions).JSON()),
		"age_distribution":     chartJSON(ageBar(ages).JSON()),
		"gender_breakdown":     chartJSON(genderPie(genders).JSON()),
		"mean_scores":          chartJSON(meanScoreBar(meanScores).JSON()),
	}

	c.JSON(http.StatusOK, gin.H{
		"tallies":     tallies,
		"mean_scores": meanScores[:],
		"charts":      chartOptions,
	})
}

func (h *AdminHandler) fail(c *gin.Context, msg string, err error) {
	h.log.Error(msg, zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load admin data"})
}

// chartJSON renders a chart's option set as embeddable JSON.
func chartJSON(options interface{}) json.RawMessage {
	data, err := json.Marshal(options)
	if err != nil {
		return json.RawMessage("{}")
	}
	return json.RawMessage(data)
}

// predictionHistogram buckets predictions into twenty bins, mirroring the
// dashboard's distribution chart.
func predictionHistogram(predictions []float64) *charts.Bar {
	const bins = 20
	counts := make([]int, bins)
	for _, p := range predictions {
		bucket := int(p * bins)
		if bucket >= bins {
			bucket = bins - 1
		}
		counts[bucket]++
	}

	labels := make([]string, bins)
	items := make([]opts.BarData, bins)
	for i := 0; i < bins; i++ {
		labels[i] = fmt.Sprintf("%.2f", float64(i)/bins)
		items[i] = opts.BarData{Value: counts[i]}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "ASD Prediction Distribution"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(labels).AddSeries("Count", items)
	return bar
}

func ageBar(ages []repository.AgeTally) *charts.Bar {
	labels := make([]string, len(ages))
	items := make([]opts.BarData, len(ages))
	for i, t := range ages {
		labels[i] = fmt.Sprintf("%d", t.Age)
		items[i] = opts.BarData{Value: t.Count}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Assessments by Age"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(labels).AddSeries("Count", items)
	return bar
}

func genderPie(genders []repository.Tally) *charts.Pie {
	items := make([]opts.PieData, len(genders))
	for i, t := range genders {
		items[i] = opts.PieData{Name: t.Value, Value: t.Count}
	}

	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Assessments by Gender"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	pie.AddSeries("Gender", items)
	return pie
}

func meanScoreBar(means [10]float64) *charts.Bar {
	labels := make([]string, len(means))
	items := make([]opts.BarData, len(means))
	for i, mean := range means {
		labels[i] = fmt.Sprintf("a%d", i+1)
		items[i] = opts.BarData{Value: mean}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Average Question Scores"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(labels).AddSeries("Mean", items)
	return bar
}
