package ports

// CompilerVersionLister enumerates the compiler versions installed in a toolchain.
//
//go:generate go run go.uber.org/mock/mockgen -source=toolchain.go -destination=mocks/mock_toolchain.go -package=mocks
type CompilerVersionLister interface {
	// CompilerVersions returns the version directory names under the toolchain's compiler root, sorted.
	CompilerVersions(root string) ([]string, error)
}
