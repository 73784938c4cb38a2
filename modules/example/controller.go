package example

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/validation"
	"github.com/dmitrymomot/validation/pkg/logger"
)

const twoDigits = `\d{2}`

// Params are the query parameters accepted by both endpoints.
type Params struct {
	Param1 *string                     `query:"param1"`
	Param2 *int                        `query:"param2"`
	Param3 validation.Optional[string] `query:"param3"`
	Items  []string                    `query:"items"`
}

type Controller struct {
	log *slog.Logger
}

func NewController(log *slog.Logger) *Controller {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Controller{log: log.With(logger.Component("example"))}
}

// GetSomeData fails with a *validation.Failure listing every invalid parameter.
func (c *Controller) GetSomeData(ctx context.Context, p Params) ([]string, error) {
	err := validation.Merge(
		validation.NotNullOrEmpty(p.Param1, "param1"),
		validation.NotNull(p.Param2, "param2"),
		validation.IsPresentDeep(p.Param3, func(v string) validation.Result {
			return validation.EmptyOrMatches(&v, twoDigits, "param3")
		}, "param3"),
		validation.NotEmptyEach(p.Items, func(e string) validation.Result {
			return validation.NotEmpty(&e, "collection element should not be empty")
		}, "collection should not be empty"),
	).Err("error getting some data")
	if err != nil {
		return nil, err
	}
	return []string{"FOOs"}, nil
}

// GetSomeOtherData logs invalid parameters and answers anyway.
func (c *Controller) GetSomeOtherData(ctx context.Context, p Params) []string {
	r := validation.Merge(
		validation.NotNullOrEmpty(p.Param1, "param1"),
		validation.NotNull(p.Param2, "param2"),
	)
	if r.HasError() {
		c.log.InfoContext(ctx, "some parameters are not ok", logger.Validation(r))
	}
	return []string{"FOOs"}
}
