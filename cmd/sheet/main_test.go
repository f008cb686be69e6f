package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	fadedpez "github.com/fadedpez/dnd5e-api/clients/dnd5e"
	"github.com/fadedpez/dnd5e-api/entities"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-sheet/internal/catalog"
	"github.com/KirkDiggler/rpg-sheet/internal/clients/external"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/services/character"
	charactermock "github.com/KirkDiggler/rpg-sheet/internal/services/character/mock"
)

const fighterYAML = `
id: char_1
name: Aldric
level: 1
class_id: fighter
race_id: human
hit_die: 10
base_scores: {str: 16, dex: 12, con: 14, int: 10, wis: 10, cha: 8}
saving_throws: [str, con]
proficiencies:
  armor: [all armor, shields]
  weapons: [simple weapons, martial weapons]
equipped:
  armor: chain-mail
  weapons: [longsword]
`

// staticSource serves a fixed equipment listing
type staticSource struct {
	items map[string]fadedpez.EquipmentInterface
	order []string
}

func (s *staticSource) ListEquipment() ([]*entities.ReferenceItem, error) {
	refs := make([]*entities.ReferenceItem, 0, len(s.order))
	for _, key := range s.order {
		refs = append(refs, &entities.ReferenceItem{Key: key})
	}
	return refs, nil
}

func (s *staticSource) GetEquipment(key string) (fadedpez.EquipmentInterface, error) {
	return s.items[key], nil
}

type CLITestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *charactermock.MockService
	opts        *rootOptions
	stdout      *bytes.Buffer
	stderr      *bytes.Buffer
	closed      bool
	dir         string
}

func TestCLISuite(t *testing.T) {
	suite.Run(t, new(CLITestSuite))
}

func (s *CLITestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = charactermock.NewMockService(s.ctrl)
	s.stdout = &bytes.Buffer{}
	s.stderr = &bytes.Buffer{}
	s.closed = false
	s.dir = s.T().TempDir()

	s.opts = newRootOptions()
	s.opts.newService = func(context.Context) (character.Service, func() error, error) {
		return s.mockService, func() error {
			s.closed = true
			return nil
		}, nil
	}
}

func (s *CLITestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *CLITestSuite) execute(args ...string) error {
	cmd := newRootCmd(s.opts)
	cmd.SetOut(s.stdout)
	cmd.SetErr(s.stderr)
	cmd.SetArgs(args)
	return cmd.ExecuteContext(context.Background())
}

func (s *CLITestSuite) writeFile(name, content string) string {
	path := filepath.Join(s.dir, name)
	s.Require().NoError(os.WriteFile(path, []byte(content), 0o600))
	return path
}

func (s *CLITestSuite) TestRecalcYAML() {
	path := s.writeFile("fighter.yaml", fighterYAML)

	s.Require().NoError(s.execute("recalc", "--state", path))

	var derived dnd5e.DerivedStats
	s.Require().NoError(json.Unmarshal(s.stdout.Bytes(), &derived))
	s.Assert().Equal(16, derived.ArmorClass.Total)
	s.Assert().Equal("Chain Mail", derived.ArmorClass.ArmorName)
	s.Assert().Equal(dnd5e.HitPoints{Max: 12, Current: 12}, derived.HitPoints)
	s.Assert().Len(derived.SavingThrows, 6)
	s.Assert().Len(derived.Skills, 18)
	s.Require().Len(derived.Attacks, 2)
	s.Assert().Equal("1d8+3 slashing (versatile: 1d10+3)", derived.Attacks[0].Damage)
	s.Assert().Empty(derived.Warnings)
}

func (s *CLITestSuite) TestRecalcJSONFromStdin() {
	cmd := newRootCmd(s.opts)
	cmd.SetOut(s.stdout)
	cmd.SetErr(s.stderr)
	cmd.SetIn(strings.NewReader(`{"name": "Pip", "level": 2, "class_id": "rogue", "hit_die": 8, "base_scores": {"dex": 14}}`))
	cmd.SetArgs([]string{"recalc", "--state", "-"})

	s.Require().NoError(cmd.ExecuteContext(context.Background()))

	var derived dnd5e.DerivedStats
	s.Require().NoError(json.Unmarshal(s.stdout.Bytes(), &derived))
	s.Assert().Equal(2, derived.ProficiencyBonus)
	s.Assert().Equal(12, derived.ArmorClass.Total)
}

func (s *CLITestSuite) TestRecalcJSONFile() {
	path := s.writeFile("state.json", `{"name": "Pip", "level": 1, "class_id": "wizard", "hit_die": 6,
		"base_scores": {"int": 16, "con": 12}, "spellcasting": {"ability": "intelligence"}}`)

	s.Require().NoError(s.execute("recalc", "--state", path))

	var derived dnd5e.DerivedStats
	s.Require().NoError(json.Unmarshal(s.stdout.Bytes(), &derived))
	s.Assert().Equal(dnd5e.SpellStats{SaveDC: 13, AttackBonus: 5}, derived.SpellStats)
}

func (s *CLITestSuite) TestRecalcStrict() {
	path := s.writeFile("broken.yaml", strings.Replace(fighterYAML, "chain-mail", "mithral-plate", 1))

	s.Require().NoError(s.execute("recalc", "--state", path))
	s.Assert().Contains(s.stdout.String(), "armor-missing")

	s.stdout.Reset()
	err := s.execute("recalc", "--state", path, "--strict")
	s.Require().Error(err)
	s.Assert().True(errors.IsFailedPrecondition(err))
	s.Assert().Equal(4, errors.GetCode(err).ExitCode())
	s.Assert().Contains(s.stdout.String(), "armor-missing", "the sheet is still printed")
}

func (s *CLITestSuite) TestRecalcInputErrors() {
	err := s.execute("recalc")
	s.Require().Error(err)

	err = s.execute("recalc", "--state", filepath.Join(s.dir, "missing.yaml"))
	s.Assert().True(errors.IsInvalidArgument(err))

	path := s.writeFile("bad.yaml", "level: [not, a, number]")
	err = s.execute("recalc", "--state", path)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *CLITestSuite) TestUnknownFlagIsUsageError() {
	err := s.execute("recalc", "--bogus")
	s.Require().Error(err)
	s.Assert().Equal(2, errors.GetCode(err).ExitCode())
}

func (s *CLITestSuite) TestCatalogShow() {
	s.Require().NoError(s.execute("catalog", "show", "item", "longsword"))
	s.Assert().Contains(s.stdout.String(), "name: Longsword")
	s.Assert().Contains(s.stdout.String(), "damage_dice: 1d8")

	s.stdout.Reset()
	s.Require().NoError(s.execute("catalog", "show", "race", "hill-dwarf"))
	s.Assert().Contains(s.stdout.String(), "Dwarven Toughness")

	err := s.execute("catalog", "show", "spell", "fireball")
	s.Assert().True(errors.IsInvalidArgument(err))

	err = s.execute("catalog", "show", "class", "artificer")
	s.Assert().True(errors.IsNotFound(err))
}

func (s *CLITestSuite) TestCatalogImport() {
	source := &staticSource{
		order: []string{"dagger", "torch", "leather-armor"},
		items: map[string]fadedpez.EquipmentInterface{
			"dagger": &entities.Weapon{
				Key:            "dagger",
				Name:           "Dagger",
				WeaponCategory: "Simple",
				Damage:         &entities.Damage{DamageDice: "1d4", DamageType: &entities.ReferenceItem{Name: "Piercing"}},
				Properties:     []*entities.ReferenceItem{{Name: "Finesse"}, {Name: "Thrown"}},
			},
			"torch": &entities.Equipment{Key: "torch", Name: "Torch"},
			"leather-armor": &entities.Armor{
				Key:           "leather-armor",
				Name:          "Leather Armor",
				ArmorCategory: "Light",
				ArmorClass:    &entities.ArmorClass{Base: 11, DexBonus: true},
			},
		},
	}
	var gotConfig *external.Config
	s.opts.newSource = func(cfg *external.Config) (external.Source, error) {
		gotConfig = cfg
		return source, nil
	}

	out := filepath.Join(s.dir, "srd")
	s.Require().NoError(s.execute("catalog", "import", "--out", out))
	s.Assert().Contains(s.stdout.String(), "wrote 2 items")
	s.Require().NotNil(gotConfig)
	s.Assert().Equal(8, gotConfig.Concurrency)

	imported, err := catalog.LoadDir(out)
	s.Require().NoError(err)

	dagger, ok := imported.Item("dagger")
	s.Require().True(ok)
	s.Assert().True(dagger.Weapon.Finesse)
	s.Assert().Equal("20/60 ft", dagger.Weapon.Thrown)

	leather, ok := imported.Item("leather")
	s.Require().True(ok)
	s.Assert().Equal(11, leather.Armor.BaseAC)
	s.Assert().Nil(leather.Armor.DexCap)

	_, ok = imported.Item("torch")
	s.Assert().False(ok)

	// the import directory is usable as catalog.dir on its own
	_, ok = imported.Class("fighter")
	s.Assert().True(ok)
	_, ok = imported.Race("human")
	s.Assert().True(ok)
}

func (s *CLITestSuite) TestCharacterCreate() {
	path := s.writeFile("fighter.yaml", fighterYAML)

	s.mockService.EXPECT().
		CreateCharacter(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *character.CreateCharacterInput) (*character.CreateCharacterOutput, error) {
			s.Assert().Equal("Aldric", input.State.Name)
			return &character.CreateCharacterOutput{
				State:   input.State,
				Derived: &dnd5e.DerivedStats{ProficiencyBonus: 2},
			}, nil
		})

	s.Require().NoError(s.execute("character", "create", "--state", path))

	var view sheetView
	s.Require().NoError(json.Unmarshal(s.stdout.Bytes(), &view))
	s.Assert().Equal("char_1", view.State.ID)
	s.Assert().Equal(2, view.Derived.ProficiencyBonus)
	s.Assert().True(s.closed)
}

func (s *CLITestSuite) TestCharacterList() {
	s.mockService.EXPECT().
		ListCharacters(gomock.Any(), &character.ListCharactersInput{}).
		Return(&character.ListCharactersOutput{States: []*dnd5e.CharacterState{
			{ID: "char_1", Name: "Aldric", Level: 3, ClassID: "fighter", RaceID: "human"},
		}}, nil)

	s.Require().NoError(s.execute("character", "list"))

	var rows []summaryView
	s.Require().NoError(json.Unmarshal(s.stdout.Bytes(), &rows))
	s.Assert().Equal([]summaryView{{ID: "char_1", Name: "Aldric", Level: 3, ClassID: "fighter", RaceID: "human"}}, rows)
}

func (s *CLITestSuite) TestCharacterEquip() {
	s.mockService.EXPECT().
		EquipItems(gomock.Any(), &character.EquipItemsInput{
			CharacterID: "char_1",
			Equipped: dnd5e.EquippedSlots{
				Armor:   "chain-mail",
				Shield:  "shield",
				Weapons: []string{"longsword", "dagger"},
			},
		}).
		Return(&character.EquipItemsOutput{
			State:   &dnd5e.CharacterState{ID: "char_1"},
			Derived: &dnd5e.DerivedStats{},
		}, nil)

	s.Require().NoError(s.execute("character", "equip", "char_1",
		"--armor", "chain-mail", "--shield", "shield", "--weapon", "longsword", "--weapon", "dagger"))
}

func (s *CLITestSuite) TestCharacterLevelUp() {
	s.mockService.EXPECT().
		LevelUp(gomock.Any(), &character.LevelUpInput{CharacterID: "char_1", Method: character.HitPointMethodRoll}).
		Return(&character.LevelUpOutput{
			State:        &dnd5e.CharacterState{ID: "char_1", Level: 4},
			Derived:      &dnd5e.DerivedStats{},
			HitDieResult: 7,
		}, nil)

	s.Require().NoError(s.execute("character", "level-up", "char_1", "--method", "roll"))
	s.Assert().Contains(s.stderr.String(), "level 4: hit die 7")
}

func (s *CLITestSuite) TestCharacterRecalculateAll() {
	s.mockService.EXPECT().
		ListCharacters(gomock.Any(), gomock.Any()).
		Return(&character.ListCharactersOutput{States: []*dnd5e.CharacterState{
			{ID: "char_1"}, {ID: "char_2"}, {ID: "char_3"},
		}}, nil)
	s.mockService.EXPECT().
		Recalculate(gomock.Any(), &character.RecalculateInput{CharacterID: "char_1"}).
		Return(&character.RecalculateOutput{Derived: &dnd5e.DerivedStats{}}, nil)
	s.mockService.EXPECT().
		Recalculate(gomock.Any(), &character.RecalculateInput{CharacterID: "char_2"}).
		Return(nil, errors.Internal("corrupt state"))
	s.mockService.EXPECT().
		Recalculate(gomock.Any(), &character.RecalculateInput{CharacterID: "char_3"}).
		Return(&character.RecalculateOutput{Derived: &dnd5e.DerivedStats{}}, nil)

	err := s.execute("character", "recalculate", "--all")
	s.Require().Error(err)
	s.Assert().True(errors.IsInternal(err))
	s.Assert().Contains(s.stdout.String(), "recalculated 2 of 3 characters")
}

func (s *CLITestSuite) TestCharacterRecalculateArgs() {
	s.Require().Error(s.execute("character", "recalculate"))
	s.Require().Error(s.execute("character", "recalculate", "--all", "char_1"))
}

func (s *CLITestSuite) TestCharacterErrors() {
	s.Run("not found maps to its exit code", func() {
		s.mockService.EXPECT().
			DeleteCharacter(gomock.Any(), &character.DeleteCharacterInput{CharacterID: "ghost"}).
			Return(nil, errors.NotFound("character with ID ghost not found"))

		err := s.execute("character", "delete", "ghost")
		s.Require().Error(err)
		s.Assert().Equal(3, errors.GetCode(err).ExitCode())
		s.Assert().True(s.closed)
	})

	s.Run("store unavailable", func() {
		s.opts.newService = func(context.Context) (character.Service, func() error, error) {
			return nil, nil, errors.Unavailable("redis: ping failed")
		}

		err := s.execute("character", "get", "char_1")
		s.Assert().True(errors.IsUnavailable(err))
	})
}
