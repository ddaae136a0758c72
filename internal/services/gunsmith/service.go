package gunsmith

//go:generate mockgen -destination=mock/mock_service.go -package=mockgunsmith -source=service.go

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/gunsmith/internal/domain/weapons"
	gserr "github.com/KirkDiggler/gunsmith/internal/errors"
	"github.com/KirkDiggler/gunsmith/internal/options"
	"github.com/KirkDiggler/gunsmith/internal/repositories/items"
)

// Service builds the option lists the customization UI is driven by
type Service interface {
	// LoadPageData returns both option lists plus the raw catalog
	LoadPageData(ctx context.Context) (*PageData, error)

	// GetWeapon looks up a single weapon
	GetWeapon(ctx context.Context, id string) (*weapons.Weapon, error)

	// ModOptionsForWeapon lists only the mods the weapon accepts, in catalog order
	ModOptionsForWeapon(ctx context.Context, weaponID string) ([]*options.Option, error)

	// WeaponGroups returns the weapon option list cut into header blocks
	WeaponGroups(ctx context.Context) ([]*options.Group, error)

	// FitMods attaches the given mods to a weapon. Every mod must be listed
	// as compatible, and a slot takes at most one mod.
	FitMods(ctx context.Context, weaponID string, modIDs []string) (*weapons.Loadout, error)
}

// PageData is the payload handed to the presentation layer
type PageData struct {
	WeaponOptions []*options.Option `json:"weaponOptions"`
	ModOptions    []*options.Option `json:"modOptions"`
	ItemData      *ItemData         `json:"itemData,omitempty"`
}

// ItemData is the catalog exactly as the repository returned it
type ItemData struct {
	Weapons []*weapons.Weapon    `json:"weapons"`
	Mods    []*weapons.WeaponMod `json:"mods"`
}

type service struct {
	repository items.Repository
	builder    *options.Builder
	logger     *zap.Logger
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository items.Repository
	Builder    *options.Builder // Optional - defaults to options.NewBuilder(nil)
	Logger     *zap.Logger      // Optional - defaults to a no-op logger
}

// NewService creates a new gunsmith service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil || cfg.Repository == nil {
		panic("ServiceConfig and Repository are required")
	}

	svc := &service{
		repository: cfg.Repository,
		builder:    cfg.Builder,
		logger:     cfg.Logger,
	}

	if svc.builder == nil {
		svc.builder = options.NewBuilder(nil)
	}
	if svc.logger == nil {
		svc.logger = zap.NewNop()
	}

	return svc
}

func (s *service) LoadPageData(ctx context.Context) (*PageData, error) {
	var (
		weaponList []*weapons.Weapon
		modList    []*weapons.WeaponMod
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		weaponList, err = s.repository.ListWeapons(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		modList, err = s.repository.ListMods(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.Error("failed to load catalog", zap.Error(err))
		return nil, gserr.Wrap(err, "failed to load catalog")
	}

	weaponOptions, err := s.builder.WeaponOptions(weaponList)
	if err != nil {
		s.logger.Error("failed to build weapon options", zap.Error(err))
		return nil, err
	}
	modOptions, err := s.builder.ModOptions(modList)
	if err != nil {
		s.logger.Error("failed to build mod options", zap.Error(err))
		return nil, err
	}

	s.logger.Debug("built page data",
		zap.Int("weapons", len(weaponList)),
		zap.Int("mods", len(modList)),
		zap.Int("weapon_options", len(weaponOptions)),
		zap.Stringer("group_order", s.builder.GroupOrder()),
	)

	return &PageData{
		WeaponOptions: weaponOptions,
		ModOptions:    modOptions,
		ItemData: &ItemData{
			Weapons: weaponList,
			Mods:    modList,
		},
	}, nil
}

func (s *service) GetWeapon(ctx context.Context, id string) (*weapons.Weapon, error) {
	if id == "" {
		return nil, gserr.InvalidArgument("weapon ID is required")
	}

	weapon, err := s.repository.GetWeapon(ctx, id)
	if err != nil {
		return nil, gserr.Wrapf(err, "failed to get weapon %s", id)
	}

	return weapon, nil
}

func (s *service) ModOptionsForWeapon(ctx context.Context, weaponID string) ([]*options.Option, error) {
	weapon, err := s.GetWeapon(ctx, weaponID)
	if err != nil {
		return nil, err
	}

	modList, err := s.repository.ListMods(ctx)
	if err != nil {
		return nil, gserr.Wrap(err, "failed to list mods")
	}

	compatible := weapons.FilterCompatible(weapon, modList)
	s.logger.Debug("filtered compatible mods",
		zap.String("weapon_id", weaponID),
		zap.Int("compatible", len(compatible)),
		zap.Int("total", len(modList)),
	)

	return s.builder.ModOptions(compatible)
}

func (s *service) WeaponGroups(ctx context.Context) ([]*options.Group, error) {
	weaponList, err := s.repository.ListWeapons(ctx)
	if err != nil {
		return nil, gserr.Wrap(err, "failed to list weapons")
	}

	weaponOptions, err := s.builder.WeaponOptions(weaponList)
	if err != nil {
		return nil, err
	}

	return options.SplitGroups(weaponOptions), nil
}

func (s *service) FitMods(ctx context.Context, weaponID string, modIDs []string) (*weapons.Loadout, error) {
	weapon, err := s.GetWeapon(ctx, weaponID)
	if err != nil {
		return nil, err
	}

	loadout := &weapons.Loadout{
		Weapon: weapon,
		Mods:   make([]*weapons.WeaponMod, 0, len(modIDs)),
	}

	for _, id := range modIDs {
		mod, err := s.repository.GetMod(ctx, id)
		if err != nil {
			return nil, gserr.Wrapf(err, "failed to get mod %s", id)
		}

		if !weapon.CompatibleMods.Allows(mod.Slot, mod.ID) {
			return nil, gserr.Validationf("%s does not fit the %s", mod.Name, weapon.Name).
				WithMeta("weapon_id", weapon.ID).
				WithMeta("mod_id", mod.ID)
		}

		if fitted := loadout.Mod(mod.Slot); fitted != nil {
			return nil, gserr.Validationf("%s and %s both use the %s slot", fitted.Name, mod.Name, mod.Slot).
				WithMeta("weapon_id", weapon.ID).
				WithMeta("slot", string(mod.Slot))
		}

		loadout.Mods = append(loadout.Mods, mod)
	}

	return loadout, nil
}
