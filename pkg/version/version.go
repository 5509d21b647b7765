package version

const version = "1.0.0"

func Get() string {
	return version
}
