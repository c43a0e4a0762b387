// Package config builds the explicit option map for the build input resolver.
//
// Options are layered with clear precedence:
//  1. key=value flags (highest priority)
//  2. Options files named on the command line, later files first
//  3. Local options (.unity-builder.yaml in git root)
//  4. Global options (~/.config/unity-builder/options.yaml)
//
// Option files are flat YAML maps of input keys to scalars:
//
//	targetPlatform: Android
//	androidAppBundle: true
//	androidVersionCode: 42
//
// # Basic Usage
//
//	resolver := config.NewResolver(config.ResolverConfig{
//	    Files: []string{"ci/android.yaml"},
//	    Flags: []string{"buildName=Nightly"},
//	})
//
//	opts, err := resolver.Resolve()
//	if err != nil {
//	    return err
//	}
//	fmt.Println(opts.Get("targetPlatform"))     // "Android"
//	fmt.Println(opts.Source("targetPlatform"))  // "file"
//
// Unreadable or malformed global and local files produce warnings rather than
// errors. A missing file named in Files is an error.
package config
