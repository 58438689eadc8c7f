package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/demonlord-sheet/internal/cli"
	"github.com/KirkDiggler/demonlord-sheet/internal/domain/character"
	"github.com/KirkDiggler/demonlord-sheet/internal/domain/choices"
	"github.com/KirkDiggler/demonlord-sheet/internal/domain/rulebook"
	"github.com/KirkDiggler/demonlord-sheet/internal/domain/rulebook/demonlord"
	apperr "github.com/KirkDiggler/demonlord-sheet/internal/errors"
	"github.com/KirkDiggler/demonlord-sheet/internal/events"
	characterService "github.com/KirkDiggler/demonlord-sheet/internal/services/character"
	mockcharacter "github.com/KirkDiggler/demonlord-sheet/internal/services/character/mock"
	"github.com/KirkDiggler/demonlord-sheet/internal/uuid"
)

type CLITestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mockcharacter.MockService
	mockCatalog *mockcharacter.MockCatalog
	registry    *demonlord.Registry
	service     characterService.Service
}

func (s *CLITestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = mockcharacter.NewMockService(s.ctrl)
	s.mockCatalog = mockcharacter.NewMockCatalog(s.ctrl)
	s.registry = demonlord.NewStandardRegistry()
	s.service = characterService.NewService(&characterService.ServiceConfig{
		Catalog:     s.registry,
		IDGenerator: uuid.NewSequentialGenerator("cli"),
	})
}

func (s *CLITestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestCLISuite(t *testing.T) {
	suite.Run(t, new(CLITestSuite))
}

// run executes the command tree against the real service and catalog
func (s *CLITestSuite) run(args ...string) (string, error) {
	return execute(&cli.Deps{Service: s.service, Catalog: s.registry}, args...)
}

func execute(deps *cli.Deps, args ...string) (string, error) {
	root := cli.NewRootCmd(deps)
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func (s *CLITestSuite) TestShowText() {
	out, err := s.run("show", "--character", "edward", "--level", "3")
	s.Require().NoError(err)

	s.Contains(out, "Edward")
	s.Contains(out, "Level 3 Human")
	s.Contains(out, "Novice Path")
	s.Contains(out, "Warrior")
	s.Contains(out, "Healing Rate")
	s.Contains(out, "expertPath-3")
	s.Contains(out, "(default)")
}

func (s *CLITestSuite) TestShowJSONWithChoice() {
	out, err := s.run("show", "-c", "edward", "-l", "3", "--choice", "expertPath-3=agility", "-f", "json")
	s.Require().NoError(err)

	var sheet characterService.Sheet
	s.Require().NoError(json.Unmarshal([]byte(out), &sheet))

	s.Equal("Edward", sheet.Name)
	s.Equal(3, sheet.Level)
	s.Equal(11, sheet.Attributes.Agility)
	s.Equal(10, sheet.Attributes.Intellect)
	s.Equal(23, sheet.Attributes.Health)

	var found bool
	for _, c := range sheet.Choices {
		if c.Location == "expertPath-3" {
			found = true
			s.True(c.Stored)
			s.Equal([]string{"Agility"}, c.Selected)
		}
	}
	s.True(found, "expected the assassin attribute choice on the sheet")
}

func (s *CLITestSuite) TestShowDefaultChoicesRaiseBothAttributes() {
	out, err := s.run("show", "-l", "3", "-f", "json")
	s.Require().NoError(err)

	var sheet characterService.Sheet
	s.Require().NoError(json.Unmarshal([]byte(out), &sheet))
	s.Equal(11, sheet.Attributes.Agility)
	s.Equal(11, sheet.Attributes.Intellect)
}

func (s *CLITestSuite) TestShowErrors() {
	tests := []struct {
		name  string
		args  []string
		check func(error) bool
	}{
		{
			name:  "unknown character",
			args:  []string{"show", "-c", "nobody"},
			check: apperr.IsNotFound,
		},
		{
			name:  "choice without a value",
			args:  []string{"show", "-l", "3", "--choice", "expertPath-3"},
			check: apperr.IsInvalidArgument,
		},
		{
			name:  "malformed location",
			args:  []string{"show", "-l", "3", "--choice", "somewhere=agility"},
			check: apperr.IsInvalidArgument,
		},
		{
			name:  "nothing offered at the location yet",
			args:  []string{"show", "-l", "1", "--choice", "expertPath-3=agility"},
			check: apperr.IsNotFound,
		},
		{
			name:  "unknown attribute",
			args:  []string{"show", "-l", "3", "--choice", "expertPath-3=luck"},
			check: apperr.IsInvalidArgument,
		},
		{
			name:  "unknown format",
			args:  []string{"show", "-f", "yaml"},
			check: apperr.IsInvalidArgument,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := s.run(tt.args...)
			s.Require().Error(err)
			s.True(tt.check(err), "unexpected error: %v", err)
		})
	}
}

func (s *CLITestSuite) TestPathsByTier() {
	s.mockCatalog.EXPECT().
		ListPaths(rulebook.TierExpert).
		Return([]*rulebook.Path{demonlord.Assassin, demonlord.Fighter})

	out, err := execute(&cli.Deps{Service: s.mockService, Catalog: s.mockCatalog}, "paths", "--tier", "expert")
	s.Require().NoError(err)

	s.Contains(out, "assassin")
	s.Contains(out, "Fighter")
	s.Contains(out, "levels 3,6,9")
	s.Contains(out, "level 3: 2 attribute")
	s.Contains(out, "level 6: 1 skill")
}

func (s *CLITestSuite) TestPathsJSONListsEveryTier() {
	out, err := s.run("paths", "-f", "json")
	s.Require().NoError(err)

	var summaries []cli.PathSummary
	s.Require().NoError(json.Unmarshal([]byte(out), &summaries))

	tiers := map[rulebook.Tier]int{}
	for _, p := range summaries {
		tiers[p.Tier]++
	}
	s.Equal(3, tiers[rulebook.TierNovice])
	s.Equal(2, tiers[rulebook.TierExpert])
	s.Equal(1, tiers[rulebook.TierMaster])
}

func (s *CLITestSuite) TestPathsUnknownTier() {
	_, err := s.run("paths", "--tier", "legendary")
	s.Require().Error(err)
	s.True(apperr.IsInvalidArgument(err))
}

func (s *CLITestSuite) TestReassignNeedsConfirmation() {
	out, err := s.run("reassign", "-l", "3",
		"--choice", "expertPath-3=agility,intellect",
		"--slot", "expertPath", "--path", "fighter")
	s.Require().NoError(err)

	s.Contains(out, "expertPath-3")
	s.Contains(out, "--confirm")
}

func (s *CLITestSuite) TestReassignConfirmed() {
	out, err := s.run("reassign", "-l", "3", "-f", "json",
		"--choice", "expertPath-3=agility,intellect",
		"--slot", "expertPath", "--path", "fighter", "--confirm")
	s.Require().NoError(err)

	var result cli.ReassignResult
	s.Require().NoError(json.Unmarshal([]byte(out), &result))

	s.True(result.Applied)
	s.True(result.Confirmed)
	s.Require().Len(result.Corrections, 1)
	s.Equal(choices.ActionDropped, result.Corrections[0].Action)
	s.Equal("expertPath-3", result.Corrections[0].Location.Key())
}

func (s *CLITestSuite) TestReassignReportsCharacterEvents() {
	bus := events.NewBus()
	deps := &cli.Deps{
		Service:  s.service,
		Catalog:  s.registry,
		EventBus: bus,
		Changes:  events.NewChangeLog().Attach(bus),
	}

	out, err := execute(deps, "reassign", "-l", "3", "-f", "json",
		"--choice", "expertPath-3=agility,intellect",
		"--slot", "expertPath", "--path", "fighter", "--confirm")
	s.Require().NoError(err)

	var result cli.ReassignResult
	s.Require().NoError(json.Unmarshal([]byte(out), &result))

	s.Require().Len(result.Changes, 2)
	s.Equal(events.EventTypeSourceReassigned, result.Changes[0].Type)
	s.Equal("expertPath set to fighter", result.Changes[0].Summary)
	s.Equal(events.EventTypeChoiceDropped, result.Changes[1].Type)
	s.Equal("attribute choice at expertPath-3 dropped (2 -> 0 picks)", result.Changes[1].Summary)
}

func (s *CLITestSuite) TestReassignWithValidationOffDoesNotAskForConfirmation() {
	validation := character.ValidationConfig{ValidateOnAncestryChange: true}
	out, err := execute(&cli.Deps{Service: s.service, Catalog: s.registry, Validation: &validation},
		"reassign", "-l", "3",
		"--choice", "expertPath-3=agility",
		"--slot", "expertPath", "--path", "fighter")
	s.Require().NoError(err)

	s.NotContains(out, "--confirm")
	s.Contains(out, "expertPath-3 dropped")
	s.Contains(out, "still stored")
}

func (s *CLITestSuite) TestReassignPassesInputToService() {
	s.mockService.EXPECT().
		AssignPath(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *characterService.AssignPathInput) (*characterService.ReassignOutput, error) {
			s.Equal(choices.SourceMasterPath, input.Source)
			s.Equal("", input.PathKey)
			s.False(input.Confirm)
			s.Equal("Edward", input.Character.Name)
			return &characterService.ReassignOutput{Applied: true}, nil
		})

	out, err := execute(&cli.Deps{Service: s.mockService, Catalog: s.mockCatalog},
		"reassign", "-l", "10", "--slot", "masterPath")
	s.Require().NoError(err)
	s.Contains(out, "No stored choices were affected.")
}

func (s *CLITestSuite) TestReassignServiceError() {
	s.mockService.EXPECT().
		AssignPath(gomock.Any(), gomock.Any()).
		Return(nil, apperr.NotFound("path 'ninja' not found"))

	_, err := execute(&cli.Deps{Service: s.mockService, Catalog: s.mockCatalog},
		"reassign", "--slot", "expertPath", "--path", "ninja")
	s.Require().Error(err)
	s.True(apperr.IsNotFound(err))
}

func TestReassignRequiresSlot(t *testing.T) {
	_, err := execute(&cli.Deps{}, "reassign", "--path", "fighter")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "slot")
}
