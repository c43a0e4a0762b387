package buildinput

import "context"

// Snapshot holds every field resolved at one point in time.
// Tags use the input key names.
type Snapshot struct {
	TargetPlatform          string  `yaml:"targetPlatform" json:"targetPlatform"`
	UnityVersion            string  `yaml:"unityVersion" json:"unityVersion"`
	ProjectPath             string  `yaml:"projectPath" json:"projectPath"`
	BuildName               string  `yaml:"buildName" json:"buildName"`
	BuildsPath              string  `yaml:"buildsPath" json:"buildsPath"`
	BuildMethod             string  `yaml:"buildMethod" json:"buildMethod"`
	CustomImage             string  `yaml:"customImage" json:"customImage"`
	CustomParameters        string  `yaml:"customParameters" json:"customParameters"`
	VersioningStrategy      string  `yaml:"versioning" json:"versioning"`
	SpecifiedVersion        string  `yaml:"version" json:"version"`
	RunNumber               string  `yaml:"runNumber" json:"runNumber"`
	AllowDirtyBuild         bool    `yaml:"allowDirtyBuild" json:"allowDirtyBuild"`
	ChownFilesTo            string  `yaml:"chownFilesTo" json:"chownFilesTo"`
	SSHAgent                string  `yaml:"sshAgent" json:"sshAgent"`
	PreBuildSteps           string  `yaml:"preBuildSteps" json:"preBuildSteps"`
	PostBuildSteps          string  `yaml:"postBuildSteps" json:"postBuildSteps"`
	CustomJob               string  `yaml:"customJob" json:"customJob"`
	AndroidAppBundle        bool    `yaml:"androidAppBundle" json:"androidAppBundle"`
	AndroidVersionCode      string  `yaml:"androidVersionCode" json:"androidVersionCode"`
	AndroidTargetSDKVersion string  `yaml:"androidTargetSdkVersion" json:"androidTargetSdkVersion"`
	AndroidKeystoreName     string  `yaml:"androidKeystoreName" json:"androidKeystoreName"`
	AndroidKeystoreBase64   string  `yaml:"androidKeystoreBase64" json:"androidKeystoreBase64"`
	AndroidKeystorePass     string  `yaml:"androidKeystorePass" json:"androidKeystorePass"`
	AndroidKeyaliasName     string  `yaml:"androidKeyaliasName" json:"androidKeyaliasName"`
	AndroidKeyaliasPass     string  `yaml:"androidKeyaliasPass" json:"androidKeyaliasPass"`
	GithubRepo              string  `yaml:"githubRepo" json:"githubRepo"`
	Branch                  string  `yaml:"branch" json:"branch"`
	GitSha                  *string `yaml:"gitSha" json:"gitSha"`
	GithubToken             string  `yaml:"githubToken" json:"githubToken"`
	GitPrivateToken         string  `yaml:"gitPrivateToken" json:"gitPrivateToken"`
	Region                  string  `yaml:"region" json:"region"`
	AWSBaseStackName        string  `yaml:"awsBaseStackName" json:"awsBaseStackName"`
	CloudRunnerCluster      string  `yaml:"cloudRunnerCluster" json:"cloudRunnerCluster"`
	CloudRunnerCPU          string  `yaml:"cloudRunnerCpu" json:"cloudRunnerCpu"`
	CloudRunnerMemory       string  `yaml:"cloudRunnerMemory" json:"cloudRunnerMemory"`
	CloudRunnerTests        bool    `yaml:"cloudRunnerTests" json:"cloudRunnerTests"`
	KubeConfig              string  `yaml:"kubeConfig" json:"kubeConfig"`
	KubeVolume              string  `yaml:"kubeVolume" json:"kubeVolume"`
	KubeVolumeSize          string  `yaml:"kubeVolumeSize" json:"kubeVolumeSize"`
}

// Snapshot resolves every field. It calls the repository and token readers,
// so it may block for as long as they do.
func (in *Input) Snapshot(ctx context.Context) Snapshot {
	// Same fallback as GitPrivateToken, with the CLI login read at most once.
	githubToken := in.GithubToken(ctx)
	gitPrivateToken := in.Get(KeyGitPrivateToken)
	if gitPrivateToken == "" {
		gitPrivateToken = githubToken
	}

	s := Snapshot{
		TargetPlatform:          in.TargetPlatform(),
		UnityVersion:            in.UnityVersion(),
		ProjectPath:             in.ProjectPath(),
		BuildName:               in.BuildName(),
		BuildsPath:              in.BuildsPath(),
		BuildMethod:             in.BuildMethod(),
		CustomImage:             in.CustomImage(),
		CustomParameters:        in.CustomParameters(),
		VersioningStrategy:      in.VersioningStrategy(),
		SpecifiedVersion:        in.SpecifiedVersion(),
		RunNumber:               in.RunNumber(),
		AllowDirtyBuild:         in.AllowDirtyBuild(),
		ChownFilesTo:            in.ChownFilesTo(),
		SSHAgent:                in.SSHAgent(),
		PreBuildSteps:           in.PreBuildSteps(),
		PostBuildSteps:          in.PostBuildSteps(),
		CustomJob:               in.CustomJob(),
		AndroidAppBundle:        in.AndroidAppBundle(),
		AndroidVersionCode:      in.AndroidVersionCode(),
		AndroidTargetSDKVersion: in.AndroidTargetSDKVersion(),
		AndroidKeystoreName:     in.AndroidKeystoreName(),
		AndroidKeystoreBase64:   in.AndroidKeystoreBase64(),
		AndroidKeystorePass:     in.AndroidKeystorePass(),
		AndroidKeyaliasName:     in.AndroidKeyaliasName(),
		AndroidKeyaliasPass:     in.AndroidKeyaliasPass(),
		GithubRepo:              in.GithubRepo(ctx),
		Branch:                  in.Branch(ctx),
		GithubToken:             githubToken,
		GitPrivateToken:         gitPrivateToken,
		Region:                  in.Region(),
		AWSBaseStackName:        in.AWSBaseStackName(),
		CloudRunnerCluster:      in.CloudRunnerCluster(),
		CloudRunnerCPU:          in.CloudRunnerCPU(),
		CloudRunnerMemory:       in.CloudRunnerMemory(),
		CloudRunnerTests:        in.CloudRunnerTests(),
		KubeConfig:              in.KubeConfig(),
		KubeVolume:              in.KubeVolume(),
		KubeVolumeSize:          in.KubeVolumeSize(),
	}
	if sha, ok := in.GitSha(); ok {
		s.GitSha = &sha
	}
	return s
}

// Redacted returns a copy with secrets replaced by "***" when set.
func (s Snapshot) Redacted() Snapshot {
	for _, v := range []*string{
		&s.GithubToken,
		&s.GitPrivateToken,
		&s.AndroidKeystoreBase64,
		&s.AndroidKeystorePass,
		&s.AndroidKeyaliasPass,
	} {
		if *v != "" {
			*v = redacted
		}
	}
	return s
}

const redacted = "***"

// Resolution records where a raw key's value came from.
type Resolution struct {
	Key    string `yaml:"key" json:"key"`
	Value  string `yaml:"value" json:"value"`
	Source Source `yaml:"source" json:"source"`
}

// Explain looks up each key with the raw resolver, without field defaults.
func (in *Input) Explain(keys ...string) []Resolution {
	out := make([]Resolution, 0, len(keys))
	for _, key := range keys {
		v, src := in.Lookup(key)
		out = append(out, Resolution{Key: key, Value: v, Source: src})
	}
	return out
}
