package synth

const (
	// bootloaderFloor is the smallest size tier a bootloader is built for.
	bootloaderFloor = 32
	// smallPackagePins is the largest pin count of the packages lacking TCB2.
	smallPackagePins = 20

	timerDefault      = "B2"
	timerSmallPackage = "B1"
)

// Family holds the rules of one sub-family.
type Family struct {
	// VariantSuffix follows "<pins>pin-" in the build variant.
	VariantSuffix string
	// BootloaderSuffix follows "optiboot_<tier>" in the bootloader class.
	BootloaderSuffix string
	// PackageBootloaders overrides BootloaderSuffix for specific pin counts.
	PackageBootloaders map[int]string
	// ReducedPeripheral marks families whose small packages omit the default millis timer.
	ReducedPeripheral bool
}

// DefaultFamily applies to sub-families missing from the table.
var DefaultFamily = Family{
	VariantSuffix:    "standard",
	BootloaderSuffix: "dx",
}

// DefaultFamilies is the table of sub-families with dedicated rules.
var DefaultFamilies = map[string]Family{
	"dd": {
		VariantSuffix:      "ddseries",
		BootloaderSuffix:   "dd",
		PackageBootloaders: map[int]string{14: "dd14"},
		ReducedPeripheral:  true,
	},
}

func (f Family) bootloaderSuffix(pins int) string {
	if s, ok := f.PackageBootloaders[pins]; ok {
		return s
	}
	return f.BootloaderSuffix
}

func (f Family) millisTimer(pins int) string {
	if f.ReducedPeripheral && pins <= smallPackagePins {
		return timerSmallPackage
	}
	return timerDefault
}
