package buildinput

// Input keys. Each is looked up verbatim against CI inputs, the option map
// and the environment, then as ToEnvVarFormat(key) in the environment.
const (
	KeyRegion                  = "region"
	KeyUnityVersion            = "unityVersion"
	KeyBuildsPath              = "buildsPath"
	KeyVersioning              = "versioning"
	KeyVersion                 = "version"
	KeyAWSBaseStackName        = "awsBaseStackName"
	KeyCloudRunnerCluster      = "cloudRunnerCluster"
	KeyCloudRunnerCPU          = "cloudRunnerCpu"
	KeyCloudRunnerMemory       = "cloudRunnerMemory"
	KeyKubeVolumeSize          = "kubeVolumeSize"
	KeyCustomImage             = "customImage"
	KeyCustomParameters        = "customParameters"
	KeySSHAgent                = "sshAgent"
	KeyChownFilesTo            = "chownFilesTo"
	KeyPostBuildSteps          = "postBuildSteps"
	KeyPreBuildSteps           = "preBuildSteps"
	KeyCustomJob               = "customJob"
	KeyKubeConfig              = "kubeConfig"
	KeyKubeVolume              = "kubeVolume"
	KeyAndroidKeystoreName     = "androidKeystoreName"
	KeyAndroidKeystoreBase64   = "androidKeystoreBase64"
	KeyAndroidKeystorePass     = "androidKeystorePass"
	KeyAndroidKeyaliasName     = "androidKeyaliasName"
	KeyAndroidKeyaliasPass     = "androidKeyaliasPass"
	KeyAndroidTargetSDKVersion = "androidTargetSdkVersion"
	KeyAndroidVersionCode      = "androidVersionCode"
	KeyAndroidAppBundle        = "androidAppBundle"
	KeyAllowDirtyBuild         = "allowDirtyBuild"
	KeyBuildMethod             = "buildMethod"
	KeyBuildName               = "buildName"
	KeyTargetPlatform          = "targetPlatform"
	KeyProjectPath             = "projectPath"
	KeyRunNumber               = "GITHUB_RUN_NUMBER"
	KeyGitPrivateToken         = "gitPrivateToken"
	KeyGithubToken             = "githubToken"
	KeyBranch                  = "branch"
	KeyGithubRef               = "GITHUB_REF"
	KeyGithubRepository        = "GITHUB_REPOSITORY"
	KeyGithubRepo              = "GITHUB_REPO"
	KeyGithubSha               = "GITHUB_SHA"
	KeyGitSHA                  = "GitSHA"
	KeyCloudRunnerTests        = "cloudRunnerTests"
	KeyCloudRunnerTestsAlt     = "CloudRunnerTests"
)

// Field defaults.
const (
	DefaultRegion             = "eu-west-2"
	DefaultUnityVersion       = "auto"
	DefaultBuildsPath         = "build"
	DefaultVersioningStrategy = "Semantic"
	DefaultAWSBaseStackName   = "game-ci"
	DefaultCloudRunnerCluster = "local"
	DefaultCloudRunnerCPU     = "1.0"
	DefaultCloudRunnerMemory  = "750M"
	DefaultKubeVolumeSize     = "5Gi"
	DefaultRunNumber          = "0"
	DefaultGithubRepo         = "game-ci/unity-builder"
	DefaultBranch             = "main"
)

// Region returns the cloud region for remote builds.
func (in *Input) Region() string {
	return in.getOr(KeyRegion, DefaultRegion)
}

// UnityVersion returns the editor version, or "auto" to detect it from the project.
func (in *Input) UnityVersion() string {
	return in.getOr(KeyUnityVersion, DefaultUnityVersion)
}

// BuildsPath returns the output directory for build artifacts.
func (in *Input) BuildsPath() string {
	return in.getOr(KeyBuildsPath, DefaultBuildsPath)
}

// VersioningStrategy returns the strategy used to version the build.
func (in *Input) VersioningStrategy() string {
	return in.getOr(KeyVersioning, DefaultVersioningStrategy)
}

// SpecifiedVersion returns the explicit version used by the "Custom" strategy.
func (in *Input) SpecifiedVersion() string {
	return in.Get(KeyVersion)
}

// RunNumber returns the CI run number.
func (in *Input) RunNumber() string {
	return in.getOr(KeyRunNumber, DefaultRunNumber)
}

// AWSBaseStackName returns the CloudFormation base stack shared by cloud builds.
func (in *Input) AWSBaseStackName() string {
	return in.getOr(KeyAWSBaseStackName, DefaultAWSBaseStackName)
}

// CloudRunnerCluster returns where remote builds run, e.g. "aws", "k8s" or "local".
func (in *Input) CloudRunnerCluster() string {
	return in.getOr(KeyCloudRunnerCluster, DefaultCloudRunnerCluster)
}

// CloudRunnerCPU returns the CPU allocation for a remote build.
func (in *Input) CloudRunnerCPU() string {
	return in.getOr(KeyCloudRunnerCPU, DefaultCloudRunnerCPU)
}

// CloudRunnerMemory returns the memory allocation for a remote build.
func (in *Input) CloudRunnerMemory() string {
	return in.getOr(KeyCloudRunnerMemory, DefaultCloudRunnerMemory)
}

// KubeVolumeSize returns the size of the persistent volume claimed for a Kubernetes build.
func (in *Input) KubeVolumeSize() string {
	return in.getOr(KeyKubeVolumeSize, DefaultKubeVolumeSize)
}

// CustomImage returns the editor image to build with instead of the derived one.
func (in *Input) CustomImage() string { return in.Get(KeyCustomImage) }

// CustomParameters returns extra command-line arguments passed to the editor.
func (in *Input) CustomParameters() string { return in.Get(KeyCustomParameters) }

// SSHAgent returns the SSH agent socket forwarded into the build container.
func (in *Input) SSHAgent() string { return in.Get(KeySSHAgent) }

// ChownFilesTo returns the "user:group" that build output is handed to.
func (in *Input) ChownFilesTo() string { return in.Get(KeyChownFilesTo) }

// PostBuildSteps returns the steps a remote build runs after the editor exits.
func (in *Input) PostBuildSteps() string { return in.Get(KeyPostBuildSteps) }

// PreBuildSteps returns the steps a remote build runs before the editor starts.
func (in *Input) PreBuildSteps() string { return in.Get(KeyPreBuildSteps) }

// CustomJob returns a job definition that replaces the default remote build job.
func (in *Input) CustomJob() string { return in.Get(KeyCustomJob) }

// KubeConfig returns the base64 kubeconfig for Kubernetes builds.
func (in *Input) KubeConfig() string { return in.Get(KeyKubeConfig) }

// KubeVolume returns the name of an existing persistent volume claim to reuse.
func (in *Input) KubeVolume() string { return in.Get(KeyKubeVolume) }

// Android signing. All are empty when unset.

// AndroidKeystoreName returns the keystore file name written before the build.
func (in *Input) AndroidKeystoreName() string { return in.Get(KeyAndroidKeystoreName) }

// AndroidKeystoreBase64 returns the keystore contents, base64 encoded.
func (in *Input) AndroidKeystoreBase64() string { return in.Get(KeyAndroidKeystoreBase64) }

// AndroidKeystorePass returns the keystore password.
func (in *Input) AndroidKeystorePass() string { return in.Get(KeyAndroidKeystorePass) }

// AndroidKeyaliasName returns the signing key alias.
func (in *Input) AndroidKeyaliasName() string { return in.Get(KeyAndroidKeyaliasName) }

// AndroidKeyaliasPass returns the signing key alias password.
func (in *Input) AndroidKeyaliasPass() string { return in.Get(KeyAndroidKeyaliasPass) }

// AndroidTargetSDKVersion returns the target API level, e.g. "AndroidApiLevel31".
func (in *Input) AndroidTargetSDKVersion() string { return in.Get(KeyAndroidTargetSDKVersion) }

// AndroidVersionCode returns the version code; empty means it is derived from the version.
func (in *Input) AndroidVersionCode() string { return in.Get(KeyAndroidVersionCode) }

// BuildMethod returns the editor method invoked for the build.
// An empty value is filled in later by the build container.
func (in *Input) BuildMethod() string {
	return in.Get(KeyBuildMethod)
}

// TargetPlatform returns the Unity build target. When unset it falls back to
// the PlatformDefaults given to New, or "" if there is none.
func (in *Input) TargetPlatform() string {
	if v := in.Get(KeyTargetPlatform); v != "" {
		return v
	}
	if in.platform == nil {
		return ""
	}
	return in.platform.DefaultTarget()
}

// BuildName returns the name of the built artifact, defaulting to the target platform.
func (in *Input) BuildName() string {
	if v := in.Get(KeyBuildName); v != "" {
		return v
	}
	return in.TargetPlatform()
}

// AndroidAppBundle reports whether an .aab is built instead of an .apk.
func (in *Input) AndroidAppBundle() bool {
	return isTrue(in.Get(KeyAndroidAppBundle))
}

// AllowDirtyBuild reports whether a build may run on a dirty working tree.
func (in *Input) AllowDirtyBuild() bool {
	return isTrue(in.Get(KeyAllowDirtyBuild))
}

// isTrue is the only boolean coercion inputs get: the literal "true".
func isTrue(v string) bool {
	return v == "true"
}
