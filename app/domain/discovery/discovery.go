// SPDX-FileCopyrightText: Copyright (c) 2024-2026, PayGlobal, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package discovery walks the host's web-server sites and materializes one
// Instance record per directory containing a marker configuration file.
package discovery

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	config "github.com/payglobal/ess-validator/app/config/validator"
	"github.com/payglobal/ess-validator/app/domain/configparse"
	"github.com/payglobal/ess-validator/app/domain/deployment"
	logging "github.com/payglobal/ess-validator/app/logging/validator"
	"github.com/payglobal/ess-validator/app/types"
	"github.com/payglobal/ess-validator/app/utils/version"
)

// Marker files identifying an install directory. A physical path matches at
// most one instance type; ESS wins when both are somehow present.
const (
	ESSMarkerFile = "payglobal.config"
	WFEMarkerFile = "PayGlobal.WorkflowEngine.Service.exe.config"

	// WebConfigFile is the paired file inspected for encryption markers.
	WebConfigFile = "web.config"
)

// Binaries probed for version resources, relative to the install path.
var (
	productBinary   = filepath.Join("bin", "PayGlobal.SelfService.Web.dll")
	companionBinary = filepath.Join("bin", "PayGlobal.Core.dll")
)

// StatFS is the filesystem slice discovery needs. It exists so tests can
// simulate per-site enumeration failures.
type StatFS interface {
	Stat(name string) (fs.FileInfo, error)
}

type osFS struct{}

func (osFS) Stat(name string) (fs.FileInfo, error) { return os.Stat(name) }

// Discoverer finds installed instances and classifies the deployment.
type Discoverer struct {
	cfg      *config.Settings
	parser   *configparse.Parser
	versions VersionReader
	certs    CertInspector
	fs       StatFS
	logger   *logrus.Entry
}

// Option adjusts a Discoverer, test-injection style.
type Option func(*Discoverer)

func WithFS(statFS StatFS) Option { return func(d *Discoverer) { d.fs = statFS } }

func WithVersionReader(vr VersionReader) Option { return func(d *Discoverer) { d.versions = vr } }

func WithCertInspector(ci CertInspector) Option { return func(d *Discoverer) { d.certs = ci } }

func New(cfg *config.Settings, opts ...Option) *Discoverer {
	d := &Discoverer{
		cfg:      cfg,
		parser:   configparse.New(),
		versions: NewFileVersionReader(),
		certs:    NewTLSInspector(cfg.Database.ProbeTimeout),
		fs:       osFS{},
		logger:   logging.NewLogger().WithField(logging.OpField, "discovery"),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Discover probes every (site, application) physical path for marker files
// and returns the classified deployment result. A failure while probing one
// site never aborts discovery of the others.
func (d *Discoverer) Discover(facts *types.HostFacts) *types.DeploymentResult {
	result := &types.DeploymentResult{
		HostHasWebServer: facts.HasWebServer,
	}

	for _, site := range facts.Sites {
		d.discoverSite(site, result)
	}

	result.DeploymentType = deployment.Classify(
		len(result.ESSInstances), len(result.WFEInstances), facts.HasWebServer)
	return result
}

// discoverSite probes the site root and each sub-application independently.
// Panics and probe errors are contained to the site they occurred in.
func (d *Discoverer) discoverSite(site types.Site, result *types.DeploymentResult) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Errorf("site %s: discovery aborted: %v", site.Name, r)
		}
	}()

	d.probePath(site, "/", site.PhysicalPath, site.ApplicationPool, result)
	for _, app := range site.Applications {
		pool := app.ApplicationPool
		if pool == "" {
			pool = site.ApplicationPool
		}
		d.probePath(site, app.Path, app.PhysicalPath, pool, result)
	}
}

func (d *Discoverer) probePath(site types.Site, appPath, physicalPath, pool string, result *types.DeploymentResult) {
	if physicalPath == "" {
		return
	}

	identity := types.InstanceIdentity{
		SiteName:        site.Name,
		ApplicationPath: appPath,
		PhysicalPath:    physicalPath,
		ApplicationPool: pool,
	}

	switch {
	case d.markerPresent(filepath.Join(physicalPath, ESSMarkerFile)):
		result.ESSInstances = append(result.ESSInstances, d.buildESS(site, identity))
	case d.markerPresent(filepath.Join(physicalPath, WFEMarkerFile)):
		result.WFEInstances = append(result.WFEInstances, d.buildWFE(identity))
	}
}

// markerPresent treats any stat error other than "does not exist" as an
// enumeration failure for this path: logged, and the path is skipped.
func (d *Discoverer) markerPresent(path string) bool {
	if _, err := d.fs.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			d.logger.WithError(err).Warnf("unable to probe %s", path)
		}
		return false
	}
	return true
}

func (d *Discoverer) buildESS(site types.Site, identity types.InstanceIdentity) types.ESSInstance {
	parsed := d.parser.ESSFromFile(filepath.Join(identity.PhysicalPath, ESSMarkerFile))

	inst := types.ESSInstance{
		InstanceIdentity: identity,
		DatabaseBinding: types.DatabaseBinding{
			Server:   parsed.DatabaseServer,
			Database: parsed.DatabaseName,
		},
		TenantID:           parsed.TenantID,
		Host:               parsed.Host,
		VirtualRoot:        parsed.VirtualRoot,
		Protocol:           parsed.Protocol,
		AuthenticationMode: parsed.AuthenticationMode,
		Compatibility:      types.CompatibilityUnknown,
	}

	// encryption markers matter for SingleSignOn; recorded regardless so
	// the encryption rule can apply the full policy table
	inst.Encryption = d.parser.Encryption(filepath.Join(identity.PhysicalPath, WebConfigFile))

	inst.ProductVersion = d.versions.Read(filepath.Join(identity.PhysicalPath, productBinary))
	inst.CompanionVersion = d.versions.Read(filepath.Join(identity.PhysicalPath, companionBinary))
	inst.Compatibility = d.compatibility(inst.ProductVersion, inst.CompanionVersion)

	inst.TLS = d.inspectTLS(site)
	return inst
}

func (d *Discoverer) buildWFE(identity types.InstanceIdentity) types.WFEInstance {
	parsed := d.parser.WFEFromFile(filepath.Join(identity.PhysicalPath, WFEMarkerFile))

	return types.WFEInstance{
		InstanceIdentity: identity,
		DatabaseBinding: types.DatabaseBinding{
			Server:   parsed.DatabaseServer,
			Database: parsed.DatabaseName,
		},
		ClientURL:   parsed.ClientURL,
		TenantID:    parsed.TenantID,
		FromAddress: parsed.FromAddress,
	}
}

// compatibility derives the version-compatibility verdict from the
// configured table. Product lines absent from the table are assumed
// compatible; missing version data is Unknown, never Incompatible.
func (d *Discoverer) compatibility(product, companion *string) types.VersionCompatibility {
	if product == nil || companion == nil {
		return types.CompatibilityUnknown
	}

	required, ok := d.cfg.Versions.RequiredCompanion(*product)
	if !ok {
		return types.CompatibilityCompatible
	}

	cmp, err := version.Compare(*companion, required)
	if err != nil {
		return types.CompatibilityUnknown
	}
	if cmp < 0 {
		return types.CompatibilityIncompatible
	}
	return types.CompatibilityCompatible
}

// inspectTLS records the HTTPS posture of the site and the certificate
// expiry of every HTTPS binding.
func (d *Discoverer) inspectTLS(site types.Site) types.TLSInfo {
	var info types.TLSInfo
	for _, b := range site.Bindings {
		if b.Protocol != "https" {
			continue
		}
		info.UsesHTTPS = true
		info.Certificates = append(info.Certificates, d.certs.Inspect(b))
	}
	return info
}
