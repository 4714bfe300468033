// Copyright 2025 StreamNative, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package flag

import (
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/streamnative/hashkit/collection"
)

const (
	envPrefix        = "hashkit"
	collectionPrefix = "collection."
)

var collectionKeys = []string{"initial-capacity", "max-load-factor", "placement"}

type configFile struct {
	Collection collection.Config `mapstructure:"collection"`
}

// LoadCollectionConfig resolves the collection settings. Later sources win:
// defaults, the yaml file, HASHKIT_COLLECTION_* env vars, then the flags set
// on the command line.
func LoadCollectionConfig(cmd *cobra.Command, file string) (collection.Config, error) {
	v := viper.New()

	defaults := collection.NewConfig()
	v.SetDefault(collectionPrefix+"initial-capacity", defaults.InitialCapacity)
	v.SetDefault(collectionPrefix+"max-load-factor", defaults.MaxLoadFactor)
	v.SetDefault(collectionPrefix+"placement", defaults.Placement.String())

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigType("yaml")
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return collection.Config{}, errors.Wrapf(err, "failed to read config file %s", file)
		}
	}

	for _, key := range collectionKeys {
		f := cmd.Flags().Lookup(key)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(collectionPrefix+key, f); err != nil {
			return collection.Config{}, errors.Wrapf(err, "failed to bind flag %s", key)
		}
	}

	cf := configFile{}
	if err := v.Unmarshal(&cf, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc(),
		mapstructure.StringToTimeDurationHookFunc(), // default hook
		mapstructure.StringToSliceHookFunc(","),     // default hook
	))); err != nil {
		return collection.Config{}, errors.Wrap(err, "failed to load collection config")
	}

	if err := cf.Collection.Validate(); err != nil {
		return collection.Config{}, err
	}
	return cf.Collection, nil
}
