package convert

// generateComponentLibrary emits the shared UI library. Its contents are
// static: screens reference the theme and paper components directly, and the
// library re-exports the custom pieces an edited project is likely to reuse.
func (c *Converter) generateComponentLibrary() string {
	return `// Shared UI component library.
import React from 'react';
import { View, Text, StyleSheet } from 'react-native';
import { Card, Button, TextInput, Avatar, Chip } from 'react-native-paper';
import LinearGradient from 'react-native-linear-gradient';
import Icon from 'react-native-vector-icons/MaterialCommunityIcons';
import { theme } from '../../theme';

export const GradientButton = ({ text, colors, onPress, style }) => (
  <LinearGradient
    colors={colors || [theme.colors.primary, theme.colors.primaryDark]}
    start={{ x: 0, y: 0 }}
    end={{ x: 1, y: 0 }}
    style={[styles.gradientButton, style]}
  >
    <Button mode="text" textColor="#FFFFFF" contentStyle={{ height: 56 }} onPress={onPress}>
      {text}
    </Button>
  </LinearGradient>
);

export const SocialButton = ({ provider, icon, onPress, style }) => (
  <Button
    mode="outlined"
    icon={icon || 'google'}
    contentStyle={{ height: 56 }}
    style={[styles.socialButton, style]}
    onPress={onPress}
  >
    Continue with {provider}
  </Button>
);

export { default as DynamicBackground } from '../backgrounds/DynamicBackground';

const styles = StyleSheet.create({
  gradientButton: { borderRadius: 8, marginBottom: 12 },
  socialButton: { marginBottom: 12 },
});
`
}

// generateDynamicBackground emits the animated background provider every
// screen with a background config wraps itself in. Solid, gradient and image
// modes plus optional particles and blur.
func (c *Converter) generateDynamicBackground() string {
	return `import React from 'react';
import { View, StyleSheet, Dimensions, ImageBackground } from 'react-native';
import LinearGradient from 'react-native-linear-gradient';
import Animated, {
  useSharedValue,
  withTiming,
  useAnimatedStyle,
  withRepeat,
  Easing,
} from 'react-native-reanimated';
import { BlurView } from '@react-native-community/blur';
import { theme } from '../../theme';

const { width: SCREEN_WIDTH, height: SCREEN_HEIGHT } = Dimensions.get('window');

type BackgroundConfig = {
  type: 'solid' | 'gradient' | 'image';
  color?: string;
  colors?: string[];
  image?: string;
  blur?: number;
  opacity?: number;
  particles?: boolean;
  gradientAngle?: 'vertical' | 'horizontal' | 'diagonal';
};

const Particle = ({ delay }: { delay: number }) => {
  const translateY = useSharedValue(SCREEN_HEIGHT);
  const translateX = useSharedValue(Math.random() * SCREEN_WIDTH);

  React.useEffect(() => {
    translateY.value = withRepeat(
      withTiming(-100, {
        duration: 15000 + Math.random() * 10000,
        easing: Easing.linear,
      }),
      -1,
      false
    );
  }, []);

  const animatedStyle = useAnimatedStyle(() => ({
    transform: [
      { translateY: translateY.value },
      { translateX: translateX.value },
    ],
  }));

  return (
    <Animated.View
      style={[
        styles.particle,
        animatedStyle,
        { left: Math.random() * SCREEN_WIDTH - 50 },
      ]}
    />
  );
};

const DynamicBackground = ({ config, children }: { config: BackgroundConfig; children?: React.ReactNode }) => {
  const particles = config.particles ? Array.from({ length: 12 }) : [];

  const renderBackground = () => {
    if (config.type === 'gradient' && config.colors && config.colors.length >= 2) {
      const angle = config.gradientAngle || 'vertical';
      const [start, end] =
        angle === 'horizontal'
          ? [{ x: 0, y: 0.5 }, { x: 1, y: 0.5 }]
          : angle === 'diagonal'
          ? [{ x: 0, y: 0 }, { x: 1, y: 1 }]
          : [{ x: 0.5, y: 0 }, { x: 0.5, y: 1 }];

      return (
        <LinearGradient colors={config.colors} start={start} end={end} style={StyleSheet.absoluteFill} />
      );
    }

    if (config.type === 'image' && config.image) {
      return (
        <ImageBackground source={{ uri: config.image }} style={StyleSheet.absoluteFill} resizeMode="cover">
          {config.blur && config.blur > 0 ? (
            <BlurView style={StyleSheet.absoluteFill} blurType="dark" blurAmount={config.blur} />
          ) : null}
        </ImageBackground>
      );
    }

    return <View style={{ ...StyleSheet.absoluteFillObject, backgroundColor: config.color || theme.colors.background }} />;
  };

  return (
    <View style={styles.container}>
      {renderBackground()}

      {particles.length > 0 &&
        particles.map((_, i) => <Particle key={i} delay={i * 1000} />)}

      <View style={[styles.content, { opacity: config.opacity ?? 1 }]}>
        {children}
      </View>
    </View>
  );
};

const styles = StyleSheet.create({
  container: {
    ...StyleSheet.absoluteFillObject,
    overflow: 'hidden',
  },
  content: {
    flex: 1,
  },
  particle: {
    position: 'absolute',
    width: 6,
    height: 6,
    borderRadius: 3,
    backgroundColor: 'rgba(255, 255, 255, 0.15)',
  },
});

export default DynamicBackground;
`
}
