package garden

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/samber/lo"
	"github.com/wheelibin/dusk/internal/deconz"
	"github.com/wheelibin/dusk/internal/models"
)

type hubClient interface {
	GetGroups(ctx context.Context) (map[string]deconz.Group, error)
	GetGroup(ctx context.Context, id string) (deconz.Group, error)
	SetGroupOn(ctx context.Context, id string, on bool) error
}

type windowGate interface {
	IsActive(now time.Time) bool
}

// Actuation describes what the controller did in one cycle.
type Actuation struct {
	Group    models.GroupState
	Active   bool
	Decision Decision
}

type Controller struct {
	logger       *log.Logger
	hub          hubClient
	window       windowGate
	groupName    string
	luxThreshold int
}

func NewController(logger *log.Logger, hub hubClient, window windowGate, groupName string, luxThreshold int) *Controller {
	return &Controller{
		logger:       logger,
		hub:          hub,
		window:       window,
		groupName:    groupName,
		luxThreshold: luxThreshold,
	}
}

// ResolveGroup finds the id of the group whose name contains name. Groups
// are visited in ascending id order and the last match wins.
func ResolveGroup(groups map[string]deconz.Group, name string) (string, bool) {
	matching := lo.Filter(deconz.SortedIDs(lo.Keys(groups)), func(id string, _ int) bool {
		return strings.Contains(groups[id].Name, name)
	})
	if len(matching) == 0 {
		return "", false
	}
	return matching[len(matching)-1], true
}

// Apply resolves the group, reads its current state and switches it if the
// cycle's light level and the time window call for it. The group is looked
// up and read fresh every time.
func (c *Controller) Apply(ctx context.Context, result models.CycleResult, now time.Time) (Actuation, error) {

	groups, err := c.hub.GetGroups(ctx)
	if err != nil {
		return Actuation{}, fmt.Errorf("error reading groups: %w", err)
	}

	groupID, found := ResolveGroup(groups, c.groupName)
	if !found {
		c.logger.Warn("no group found, nothing to do", "name", c.groupName)
		return Actuation{Decision: Idle}, nil
	}

	group, err := c.hub.GetGroup(ctx, groupID)
	if err != nil {
		return Actuation{}, fmt.Errorf("error reading group (%s): %w", groupID, err)
	}

	state := models.GroupState{
		ID:    groupID,
		Name:  group.Name,
		AllOn: group.State.AllOn,
		AnyOn: group.State.AnyOn,
	}
	active := c.window.IsActive(now)
	lux := result.Lux()
	decision := Decide(active, lux, c.luxThreshold, state.AnyOn)

	actuation := Actuation{Group: state, Active: active, Decision: decision}

	var luxValue any = "none"
	if lux != nil {
		luxValue = *lux
	}
	c.logger.Debug("decided", "group", state.Name, "on", state.AnyOn, "active", active, "lux", luxValue, "decision", decision)

	switch decision {
	case SwitchOn, SwitchOff:
		on := decision == SwitchOn
		if err := c.hub.SetGroupOn(ctx, groupID, on); err != nil {
			return actuation, fmt.Errorf("error switching group (%s) on=%t: %w", state.Name, on, err)
		}
		c.logger.Info("switched group", "group", state.Name, "on", on)
	}

	return actuation, nil
}
