package gunsmith_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/gunsmith/internal/domain/weapons"
	gserr "github.com/KirkDiggler/gunsmith/internal/errors"
	"github.com/KirkDiggler/gunsmith/internal/options"
	mockitems "github.com/KirkDiggler/gunsmith/internal/repositories/items/mock"
	"github.com/KirkDiggler/gunsmith/internal/services/gunsmith"
	"github.com/KirkDiggler/gunsmith/internal/testutils"
)

type ServiceTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockRepo *mockitems.MockRepository
	catalog  *weapons.Catalog
	service  gunsmith.Service
	ctx      context.Context
}

func (s *ServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = mockitems.NewMockRepository(s.ctrl)
	s.catalog = testutils.CreateTestCatalog()
	s.ctx = context.Background()
	s.service = gunsmith.NewService(&gunsmith.ServiceConfig{
		Repository: s.mockRepo,
	})
}

func (s *ServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ServiceTestSuite) TestLoadPageData() {
	s.mockRepo.EXPECT().ListWeapons(gomock.Any()).Return(s.catalog.Weapons, nil)
	s.mockRepo.EXPECT().ListMods(gomock.Any()).Return(s.catalog.Mods, nil)

	data, err := s.service.LoadPageData(s.ctx)
	s.Require().NoError(err)

	// 3 weapons in 2 categories, big guns discovered last so listed first
	s.Require().Len(data.WeaponOptions, 5)
	s.Equal("Big Guns", data.WeaponOptions[0].Label)
	s.True(data.WeaponOptions[0].Disabled)
	s.Equal("fat-man", data.WeaponOptions[1].Value)
	s.Equal("Small Guns", data.WeaponOptions[2].Label)
	s.Equal("10mm-pistol", data.WeaponOptions[3].Value)
	s.Equal("pipe-gun", data.WeaponOptions[4].Value)

	s.Require().Len(data.ModOptions, 3)
	s.Equal("hardened-receiver", data.ModOptions[0].Value)
	s.Equal("Hardened Receiver", data.ModOptions[0].Label)

	s.Same(s.catalog.Weapons[0], data.ItemData.Weapons[0])
	s.Len(data.ItemData.Mods, 3)
}

func (s *ServiceTestSuite) TestLoadPageData_Empty() {
	s.mockRepo.EXPECT().ListWeapons(gomock.Any()).Return(nil, nil)
	s.mockRepo.EXPECT().ListMods(gomock.Any()).Return(nil, nil)

	data, err := s.service.LoadPageData(s.ctx)
	s.Require().NoError(err)
	s.Empty(data.WeaponOptions)
	s.Empty(data.ModOptions)
}

func (s *ServiceTestSuite) TestLoadPageData_RepositoryError() {
	s.mockRepo.EXPECT().ListWeapons(gomock.Any()).
		Return(nil, gserr.WrapWithCode(errors.New("connection refused"), gserr.CodeUnavailable, "redis"))
	s.mockRepo.EXPECT().ListMods(gomock.Any()).Return(s.catalog.Mods, nil).AnyTimes()

	data, err := s.service.LoadPageData(s.ctx)
	s.Nil(data)
	s.Require().Error(err)
	s.True(gserr.Is(err, gserr.CodeUnavailable))
}

func (s *ServiceTestSuite) TestLoadPageData_UnknownCategory() {
	bad := testutils.CreateTestWeapon("flamer", "Flamer", weapons.WeaponType("Explosives"))
	s.mockRepo.EXPECT().ListWeapons(gomock.Any()).Return([]*weapons.Weapon{bad}, nil)
	s.mockRepo.EXPECT().ListMods(gomock.Any()).Return(nil, nil)

	_, err := s.service.LoadPageData(s.ctx)
	s.True(gserr.IsValidation(err))
	s.Equal("flamer", gserr.GetMeta(err)["weapon_id"])
}

func (s *ServiceTestSuite) TestLoadPageData_NilMod() {
	s.mockRepo.EXPECT().ListWeapons(gomock.Any()).Return(s.catalog.Weapons, nil)
	s.mockRepo.EXPECT().ListMods(gomock.Any()).Return([]*weapons.WeaponMod{s.catalog.Mods[0], nil}, nil)

	data, err := s.service.LoadPageData(s.ctx)
	s.Nil(data)
	s.True(gserr.IsValidation(err))
}

func (s *ServiceTestSuite) TestLoadPageData_DiscoveryOrder() {
	svc := gunsmith.NewService(&gunsmith.ServiceConfig{
		Repository: s.mockRepo,
		Builder:    options.NewBuilder(&options.BuilderConfig{GroupOrder: options.GroupOrderDiscovery}),
	})
	s.mockRepo.EXPECT().ListWeapons(gomock.Any()).Return(s.catalog.Weapons, nil)
	s.mockRepo.EXPECT().ListMods(gomock.Any()).Return(s.catalog.Mods, nil)

	data, err := svc.LoadPageData(s.ctx)
	s.Require().NoError(err)
	s.Equal("Small Guns", data.WeaponOptions[0].Label)
	s.Equal("Big Guns", data.WeaponOptions[3].Label)
}

func (s *ServiceTestSuite) TestGetWeapon() {
	s.mockRepo.EXPECT().GetWeapon(gomock.Any(), "fat-man").Return(s.catalog.Weapons[1], nil)

	w, err := s.service.GetWeapon(s.ctx, "fat-man")
	s.Require().NoError(err)
	s.Equal("Fat Man", w.Name)
}

func (s *ServiceTestSuite) TestGetWeapon_EmptyID() {
	_, err := s.service.GetWeapon(s.ctx, "")
	s.True(gserr.IsInvalidArgument(err))
}

func (s *ServiceTestSuite) TestGetWeapon_NotFound() {
	s.mockRepo.EXPECT().GetWeapon(gomock.Any(), "laser-musket").
		Return(nil, gserr.NotFoundf("weapon '%s' not found", "laser-musket"))

	_, err := s.service.GetWeapon(s.ctx, "laser-musket")
	s.True(gserr.IsNotFound(err))
}

func (s *ServiceTestSuite) TestModOptionsForWeapon() {
	s.mockRepo.EXPECT().GetWeapon(gomock.Any(), "pipe-gun").Return(s.catalog.Weapons[2], nil)
	s.mockRepo.EXPECT().ListMods(gomock.Any()).Return(s.catalog.Mods, nil)

	opts, err := s.service.ModOptionsForWeapon(s.ctx, "pipe-gun")
	s.Require().NoError(err)
	s.Require().Len(opts, 2)
	s.Equal("hardened-receiver", opts[0].Value)
	s.Equal("full-stock", opts[1].Value)
}

func (s *ServiceTestSuite) TestModOptionsForWeapon_NoMods() {
	s.mockRepo.EXPECT().GetWeapon(gomock.Any(), "fat-man").Return(s.catalog.Weapons[1], nil)
	s.mockRepo.EXPECT().ListMods(gomock.Any()).Return(s.catalog.Mods, nil)

	opts, err := s.service.ModOptionsForWeapon(s.ctx, "fat-man")
	s.Require().NoError(err)
	s.Empty(opts)
}

func (s *ServiceTestSuite) TestModOptionsForWeapon_ListError() {
	s.mockRepo.EXPECT().GetWeapon(gomock.Any(), "pipe-gun").Return(s.catalog.Weapons[2], nil)
	s.mockRepo.EXPECT().ListMods(gomock.Any()).Return(nil, errors.New("boom"))

	_, err := s.service.ModOptionsForWeapon(s.ctx, "pipe-gun")
	s.Error(err)
}

func (s *ServiceTestSuite) TestWeaponGroups() {
	s.mockRepo.EXPECT().ListWeapons(gomock.Any()).Return(s.catalog.Weapons, nil)

	groups, err := s.service.WeaponGroups(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(groups, 2)
	s.Equal("Big Guns", groups[0].Header.Label)
	s.Len(groups[0].Options, 1)
	s.Equal("Small Guns", groups[1].Header.Label)
	s.Len(groups[1].Options, 2)
}

func (s *ServiceTestSuite) TestFitMods() {
	pistol := s.catalog.Weapons[0]
	s.mockRepo.EXPECT().GetWeapon(gomock.Any(), "10mm-pistol").Return(pistol, nil)
	s.mockRepo.EXPECT().GetMod(gomock.Any(), "suppressor").Return(s.catalog.Mods[2], nil)
	s.mockRepo.EXPECT().GetMod(gomock.Any(), "hardened-receiver").Return(s.catalog.Mods[0], nil)

	loadout, err := s.service.FitMods(s.ctx, "10mm-pistol", []string{"suppressor", "hardened-receiver"})
	s.Require().NoError(err)
	s.Same(pistol, loadout.Weapon)
	s.Require().Len(loadout.Mods, 2)
	s.Equal("suppressor", loadout.Mods[0].ID)
}

func (s *ServiceTestSuite) TestFitMods_NoMods() {
	s.mockRepo.EXPECT().GetWeapon(gomock.Any(), "fat-man").Return(s.catalog.Weapons[1], nil)

	loadout, err := s.service.FitMods(s.ctx, "fat-man", nil)
	s.Require().NoError(err)
	s.Empty(loadout.Mods)
	s.Equal("Fat Man", loadout.Name())
}

func (s *ServiceTestSuite) TestFitMods_Incompatible() {
	s.mockRepo.EXPECT().GetWeapon(gomock.Any(), "10mm-pistol").Return(s.catalog.Weapons[0], nil)
	s.mockRepo.EXPECT().GetMod(gomock.Any(), "full-stock").Return(s.catalog.Mods[1], nil)

	_, err := s.service.FitMods(s.ctx, "10mm-pistol", []string{"full-stock"})
	s.True(gserr.IsValidation(err))
	s.Equal("full-stock", gserr.GetMeta(err)["mod_id"])
}

func (s *ServiceTestSuite) TestFitMods_SlotTaken() {
	pistol := testutils.CreateTestWeapon("10mm-pistol", "10mm Pistol", weapons.WeaponTypeSmall)
	pistol.CompatibleMods = weapons.CompatibleMods{
		weapons.WeaponModSlotMuzzle: {"suppressor", "compensator"},
	}
	compensator := testutils.CreateTestMod("compensator", "Compensator", weapons.WeaponModSlotMuzzle)

	s.mockRepo.EXPECT().GetWeapon(gomock.Any(), "10mm-pistol").Return(pistol, nil)
	s.mockRepo.EXPECT().GetMod(gomock.Any(), "suppressor").Return(s.catalog.Mods[2], nil)
	s.mockRepo.EXPECT().GetMod(gomock.Any(), "compensator").Return(compensator, nil)

	_, err := s.service.FitMods(s.ctx, "10mm-pistol", []string{"suppressor", "compensator"})
	s.True(gserr.IsValidation(err))
	s.Equal("Muzzle", gserr.GetMeta(err)["slot"])
}

func (s *ServiceTestSuite) TestFitMods_UnknownMod() {
	s.mockRepo.EXPECT().GetWeapon(gomock.Any(), "10mm-pistol").Return(s.catalog.Weapons[0], nil)
	s.mockRepo.EXPECT().GetMod(gomock.Any(), "laser-sight").
		Return(nil, gserr.NotFoundf("mod '%s' not found", "laser-sight"))

	_, err := s.service.FitMods(s.ctx, "10mm-pistol", []string{"laser-sight"})
	s.True(gserr.IsNotFound(err))
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

func TestNewService_RequiresRepository(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic without repository")
		}
	}()
	gunsmith.NewService(&gunsmith.ServiceConfig{})
}
